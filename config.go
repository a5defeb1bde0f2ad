package sprite

import (
	"github.com/BurntSushi/toml"
)

// Config holds the settings of a sprite generation run.
type Config struct {
	// Output is the file name stem of the generated sheets and manifests.
	Output string `toml:"output"`
	// Dirs lists the icon directories, in priority order.
	Dirs []string `toml:"dirs"`
	// Ratios lists the pixel ratios to generate.
	Ratios []float64 `toml:"ratios"`
	// SDF marks every icon as recolorable.
	SDF bool `toml:"sdf"`
	// SDFIcons lists the recolorable icon identifiers.
	SDFIcons []string `toml:"sdf_icons"`
	// Format is the sheet image format: png or bmp.
	Format string `toml:"format"`
	// Workers bounds the number of concurrently processed files and ratios.
	Workers int `toml:"workers"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	return Config{
		Ratios: []float64{1},
		Format: FormatPNG,
	}
}

// LoadConfig reads a TOML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, wrapError(ErrCodeInvalidConfig, err, "unable to parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, newError(ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a runnable job.
// Individual ratios are checked by the Generator, which reports an
// unsupported ratio without stopping the other ones.
func (c Config) Validate() error {
	if c.Output == "" {
		return newError(ErrCodeInvalidConfig, "an output name is required")
	}
	if len(c.Dirs) == 0 {
		return newError(ErrCodeInvalidConfig, "at least one icon directory is required")
	}
	if len(c.Ratios) == 0 {
		return &Error{Code: ErrCodeNoRatios, Message: "at least one pixel ratio is required"}
	}
	switch c.Format {
	case "", FormatPNG, FormatBMP:
	default:
		return newError(ErrCodeInvalidConfig, "unsupported image format %q", c.Format)
	}
	return nil
}
