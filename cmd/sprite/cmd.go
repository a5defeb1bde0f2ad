package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/esimov/sprite"
)

const helpBanner = `
┌─┐┌─┐┬─┐┬┌┬┐┌─┐
└─┐├─┘├┬┘│ │ ├┤
└─┘┴  ┴└─┴ ┴ └─┘

Sprite sheet generator.
    Version: %s
`

// Version indicates the current build version.
var Version = "dev"

// options holds the command line flags.
type options struct {
	config   string
	output   string
	dirs     []string
	ratios   []float64
	sdf      bool
	sdfIcons []string
	format   string
	workers  int
	verbose  bool
}

// newLogger creates a logger writing timestamped messages to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func newCommand() *cobra.Command {
	return buildCommand(&options{})
}

// buildCommand creates the root command binding its flags to opts.
func buildCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprite -o OUTPUT -d DIR [-d DIR...]",
		Short: "Pack icons into sprite sheets with JSON manifests",
		Long: fmt.Sprintf(helpBanner, Version) + `
Every icon found in the given directories is packed into a single sheet.
One sheet and one manifest are written per pixel ratio: OUTPUT.png and
OUTPUT.json for ratio 1, OUTPUT@2x.png and OUTPUT@2x.json for ratio 2.`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			return run(cmd.Context(), cfg, newLogger(cmd.ErrOrStderr(), level))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	flags.StringVarP(&opts.output, "output", "o", "", "output file name stem")
	flags.StringSliceVarP(&opts.dirs, "dir", "d", nil, "icon directory (repeatable, first wins on duplicates)")
	flags.Float64SliceVarP(&opts.ratios, "ratio", "r", []float64{1}, "pixel ratios to generate")
	flags.BoolVar(&opts.sdf, "sdf", false, "mark every icon as recolorable")
	flags.StringSliceVar(&opts.sdfIcons, "sdf-icon", nil, "mark the icon with this identifier as recolorable")
	flags.StringVarP(&opts.format, "format", "f", sprite.FormatPNG, "sheet image format (png, bmp)")
	flags.IntVar(&opts.workers, "conc", 0, "number of files and ratios processed concurrently")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// resolveConfig merges the configuration file with the flags set explicitly.
func resolveConfig(cmd *cobra.Command, opts *options) (sprite.Config, error) {
	cfg := sprite.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = sprite.LoadConfig(opts.config); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("output") || cfg.Output == "" {
		cfg.Output = opts.output
	}
	if flags.Changed("dir") || len(cfg.Dirs) == 0 {
		cfg.Dirs = opts.dirs
	}
	if flags.Changed("ratio") {
		cfg.Ratios = opts.ratios
	}
	if flags.Changed("sdf") {
		cfg.SDF = opts.sdf
	}
	if flags.Changed("sdf-icon") {
		cfg.SDFIcons = opts.sdfIcons
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("conc") {
		cfg.Workers = opts.workers
	}
	return cfg, cfg.Validate()
}
