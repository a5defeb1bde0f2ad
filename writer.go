package sprite

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// SpriteWriter persists the sheet and manifest produced for one ratio.
// The name is the output stem already suffixed with the ratio.
type SpriteWriter interface {
	WriteSprite(name string, sheet *Sheet, m Manifest) error
}

// OutputName derives the file name stem of the given ratio: the bare stem
// for ratio 1, "stem@{ratio}x" otherwise.
func OutputName(stem string, ratio float64) string {
	if ratio == 1 {
		return stem
	}
	return stem + "@" + strconv.FormatFloat(ratio, 'g', -1, 64) + "x"
}

// FileWriter writes the sheet image and the JSON manifest next to each other.
type FileWriter struct {
	// Format is the image format of the sheet, png by default.
	Format string
}

// ImageExt returns the extension of the sheet image files.
func (fw FileWriter) ImageExt() string {
	if fw.Format == "" {
		return "." + FormatPNG
	}
	return "." + fw.Format
}

// WriteSprite writes name.{png,bmp} and name.json, creating the parent
// directory if needed. A partially written image is removed on failure.
func (fw FileWriter) WriteSprite(name string, sheet *Sheet, m Manifest) error {
	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return wrapError(ErrCodeWrite, err, "unable to create the output directory %s", dir)
		}
	}

	imgPath := name + fw.ImageExt()
	if err := writeFile(imgPath, func(f *os.File) error {
		return encodeImg(f, sheet.Image, fw.Format)
	}); err != nil {
		return &Error{Code: ErrCodeWrite, Message: imgPath, Ratio: sheet.Ratio, Cause: err}
	}

	jsonPath := name + ".json"
	if err := writeFile(jsonPath, func(f *os.File) error {
		return m.Encode(f)
	}); err != nil {
		return &Error{Code: ErrCodeWrite, Message: jsonPath, Ratio: sheet.Ratio, Cause: err}
	}
	return nil
}

// writeFile creates path and fills it with fn.
func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
