package sprite

import (
	"context"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/esimov/sprite/utils"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Duplicate records an icon file skipped because an icon with the same
// identifier was found first.
type Duplicate struct {
	ID      string
	Kept    string
	Skipped string
}

// LoadResult holds the icons found by the loader, in discovery order.
type LoadResult struct {
	Icons      []Icon
	Duplicates []Duplicate
}

// Loader reads icon files from one or more directories.
type Loader struct {
	// SDF marks every loaded icon as recolorable.
	SDF bool
	// SDFIcons lists the identifiers of the recolorable icons.
	SDFIcons []string
	// Workers is the number of files decoded concurrently.
	Workers int
	Logger  *log.Logger
}

// source is an icon file waiting to be decoded.
type source struct {
	id   string
	path string
}

// Load walks every directory in the given order and decodes the icons
// found in them. The identifier of an icon is its path relative to the
// directory, without extension. When the same identifier shows up twice
// the first file wins and the other one is reported as a duplicate.
// Cancelling ctx stops the decoding of the remaining files.
func (l *Loader) Load(ctx context.Context, dirs ...string) (*LoadResult, error) {
	logger := l.logger()
	res := &LoadResult{}

	var sources []source
	seen := make(map[string]string)
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		paths, err := walkDir(dir)
		if err != nil {
			return nil, wrapError(ErrCodeInvalidInput, err, "unable to read the icon directory %s", dir)
		}
		logger.Debug("scanned icon directory", "dir", dir, "files", len(paths))

		for _, path := range paths {
			id := iconID(dir, path)
			if kept, ok := seen[id]; ok {
				res.Duplicates = append(res.Duplicates, Duplicate{ID: id, Kept: kept, Skipped: path})
				logger.Warn("duplicate icon identifier resolved", "id", id, "kept", kept, "skipped", path)
				continue
			}
			seen[id] = path
			sources = append(sources, source{id: id, path: path})
		}
	}

	icons, err := l.decode(ctx, sources)
	if err != nil {
		return nil, err
	}
	res.Icons = icons
	logger.Debug("loaded icons", "count", len(icons), "duplicates", len(res.Duplicates))

	return res, nil
}

// decode decodes the sources concurrently while preserving their order.
func (l *Loader) decode(ctx context.Context, sources []source) ([]Icon, error) {
	type result struct {
		idx  int
		icon Icon
		err  error
	}

	workers := l.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	jobs := make(chan int)
	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				src := sources[idx]
				img, err := decodeImg(src.path)
				res := result{idx: idx}
				if err != nil {
					res.err = &Error{Code: ErrCodeDecode, Message: src.path, Icon: src.id, Cause: err}
				} else {
					res.icon = NewIcon(src.id, img, Meta{SDF: l.isSDF(src.id)})
				}
				select {
				case <-done:
					return
				case ch <- res:
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for idx := range sources {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case jobs <- idx:
			}
		}
	}()

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	icons := make([]Icon, len(sources))
	for res := range ch {
		if res.err != nil {
			return nil, res.err
		}
		icons[res.idx] = res.icon
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return icons, nil
}

func (l *Loader) isSDF(id string) bool {
	return l.SDF || utils.Contains(l.SDFIcons, id)
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.New(io.Discard)
}

// walkDir walks the directory tree in lexical order and returns the
// path of every regular file with a supported extension.
func walkDir(src string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if isValidExtension(filepath.Ext(d.Name())) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

// iconID derives the icon identifier from its path relative to dir.
func iconID(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
