package sprite

import (
	"fmt"
	"image"
	_ "image/gif"  // register the gif decoder
	_ "image/jpeg" // register the jpeg decoder
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/sprite/utils"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp" // register the webp decoder
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// validExtensions lists the icon files picked up by the loader.
var validExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"}

// decodeImg decodes an icon file to type image.Image.
// SVG documents are rasterized at the size declared by their view box.
func decodeImg(src string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(src), ".svg") {
		return rasterizeSVG(src)
	}

	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, fmt.Errorf("could not read the icon file: %w", err)
	}
	if !utils.IsImage(ctype) {
		return nil, fmt.Errorf("the icon should be an image file, got %s", ctype)
	}

	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the icon file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the icon file: %w", err)
	}
	return img, nil
}

// rasterizeSVG renders an SVG document into an RGBA buffer.
func rasterizeSVG(src string) (image.Image, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the icon file: %w", err)
	}
	defer file.Close()

	icon, err := oksvg.ReadIconStream(file)
	if err != nil {
		return nil, fmt.Errorf("could not parse the svg file: %w", err)
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg view box has no area: %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	dasher := rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, rgba, rgba.Bounds()))
	icon.Draw(dasher, 1.0)

	return rgba, nil
}

// encodeImg encodes the sheet into w using the requested format.
func encodeImg(w io.Writer, img image.Image, format string) error {
	switch format {
	case "", FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format: %q", format)
	}
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string) bool {
	return utils.Contains(validExtensions, strings.ToLower(ext))
}
