package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/esimov/sprite"
	"github.com/esimov/sprite/utils"
)

// run loads the icons and generates the sprite sheets described by cfg.
// It returns ctx.Err() when interrupted.
func run(ctx context.Context, cfg sprite.Config, logger *log.Logger) error {
	now := time.Now()

	spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText(utils.Banner, utils.StatusMessage),
		utils.DecorateText("⇢ packing icons...", utils.DefaultMessage),
	), 80*time.Millisecond)
	spinner.Start()
	defer spinner.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			spinner.StopWith(utils.StatusLine("interrupted ✘", utils.ErrorMessage))
		case <-done:
		}
	}()

	loader := &sprite.Loader{
		SDF:      cfg.SDF,
		SDFIcons: cfg.SDFIcons,
		Workers:  cfg.Workers,
		Logger:   logger,
	}
	res, err := loader.Load(ctx, cfg.Dirs...)
	if err != nil {
		spinner.StopWith(utils.StatusLine("loading icons failed ✘", utils.ErrorMessage))
		return err
	}

	gen := &sprite.Generator{
		Ratios:  cfg.Ratios,
		Workers: cfg.Workers,
		Logger:  logger,
	}
	writer := sprite.FileWriter{Format: cfg.Format}
	results, err := gen.Run(ctx, res.Icons, cfg.Output, writer)
	if err != nil {
		spinner.StopWith(utils.StatusLine("generating sprites failed ✘", utils.ErrorMessage))
		return err
	}

	spinner.StopWith(utils.StatusLine("the sprites have been generated successfully ✔", utils.SuccessMessage))

	for _, r := range results {
		fmt.Fprintf(os.Stderr, "The sprite has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(r.Name)+writer.ImageExt(), utils.SuccessMessage),
			utils.DecorateText(filepath.Base(r.Name)+".json", utils.SuccessMessage),
		)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}
