package sprite

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esimov/sprite/utils"
)

// Generator packs a set of icons once and renders one sheet and manifest
// per requested pixel ratio.
type Generator struct {
	// Ratios lists the pixel ratios to generate. Order is preserved and
	// duplicates are processed independently.
	Ratios []float64
	// Workers bounds the number of ratios processed concurrently.
	Workers int
	Logger  *log.Logger
}

// Result holds the outcome of a single ratio.
type Result struct {
	Ratio    float64
	Name     string
	Sheet    *Sheet
	Manifest Manifest
	Err      error
}

// job is a single ratio waiting to be rendered.
type job struct {
	idx   int
	ratio float64
}

// Run packs the icons and hands every rendered ratio to w under the name
// derived from stem. Packing failures abort the run. A failing ratio does
// not stop the others: its error is stored in its Result and joined into
// the returned error. Results are returned in ratio order. Once ctx is
// cancelled no further ratio is started and ctx.Err() is returned.
func (g *Generator) Run(ctx context.Context, icons []Icon, stem string, w SpriteWriter) ([]Result, error) {
	logger := g.logger()

	if len(g.Ratios) == 0 {
		return nil, &Error{Code: ErrCodeNoRatios, Message: "at least one pixel ratio is required"}
	}
	seen := make(map[string]struct{}, len(icons))
	for _, ic := range icons {
		if _, ok := seen[ic.ID]; ok {
			return nil, &Error{Code: ErrCodeInvalidInput, Message: "duplicate icon identifier", Icon: ic.ID}
		}
		seen[ic.ID] = struct{}{}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	layout, err := PackIcons(icons)
	if err != nil {
		return nil, err
	}
	logger.Debug("packed icons",
		"icons", len(icons),
		"width", layout.Width,
		"height", layout.Height,
		"elapsed", time.Since(now).Round(time.Millisecond),
	)

	workers := g.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}
	workers = utils.Min(workers, len(g.Ratios))

	var (
		wg      sync.WaitGroup
		writeMu sync.Mutex
		jobs    = make(chan job)
		results = make([]Result, len(g.Ratios))
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					results[j.idx] = Result{Ratio: j.ratio, Err: err}
					continue
				}
				res := g.render(layout, icons, stem, j.ratio)
				if res.Err == nil {
					// Duplicate ratios resolve to the same files.
					writeMu.Lock()
					res.Err = w.WriteSprite(res.Name, res.Sheet, res.Manifest)
					writeMu.Unlock()
				}
				results[j.idx] = res
			}
		}()
	}

feed:
	for idx, ratio := range g.Ratios {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: idx, ratio: ratio}:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Name == "" && results[i].Err == nil {
				results[i] = Result{Ratio: g.Ratios[i], Err: err}
			}
		}
		logger.Warn("sprite generation interrupted", "err", err)
		return results, err
	}

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			logger.Error("sprite generation failed", "ratio", res.Ratio, "err", res.Err)
			errs = append(errs, res.Err)
			continue
		}
		logger.Info("sprite generated", "name", res.Name, "ratio", res.Ratio, "icons", len(res.Manifest))
	}
	return results, errors.Join(errs...)
}

// render composes the sheet and the manifest of a single ratio.
func (g *Generator) render(layout *Layout, icons []Icon, stem string, ratio float64) Result {
	res := Result{Ratio: ratio}
	if err := validateRatio(ratio); err != nil {
		res.Err = err
		return res
	}
	res.Name = OutputName(stem, ratio)

	sheet, err := Composite(layout, icons, ratio)
	if err != nil {
		res.Err = err
		return res
	}
	m, err := BuildManifest(layout, icons, ratio)
	if err != nil {
		res.Err = err
		return res
	}
	res.Sheet = sheet
	res.Manifest = m
	return res
}

func (g *Generator) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.New(io.Discard)
}
