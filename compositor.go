package sprite

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/sprite/imop"
)

// Sheet is the raster image of a layout rendered at a single pixel ratio.
type Sheet struct {
	Ratio float64
	Image *image.NRGBA
}

// validateRatio rejects ratios which cannot scale a layout.
func validateRatio(ratio float64) error {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return &Error{
			Code:    ErrCodeUnsupportedRatio,
			Message: fmt.Sprintf("pixel ratio must be a finite positive number, got %v", ratio),
			Ratio:   ratio,
		}
	}
	return nil
}

// isIntegral reports whether the ratio is a whole number.
func isIntegral(ratio float64) bool {
	return ratio == math.Trunc(ratio)
}

// scaleEdge maps a ratio-1 coordinate to the scaled sheet.
func scaleEdge(v int, ratio float64) int {
	return int(math.Round(float64(v) * ratio))
}

// ScaleRect scales a placement by ratio. Both edges of the rectangle are
// scaled and rounded to the nearest pixel, so adjacent placements stay
// adjacent and disjoint placements stay disjoint. For whole ratios every
// value is multiplied exactly. The compositor and the manifest builder
// both use this rule, which keeps the manifest rectangles identical to the
// painted pixel regions.
func ScaleRect(p Placement, ratio float64) image.Rectangle {
	return image.Rect(
		scaleEdge(p.X, ratio),
		scaleEdge(p.Y, ratio),
		scaleEdge(p.X+p.Width, ratio),
		scaleEdge(p.Y+p.Height, ratio),
	)
}

// SheetSize returns the pixel dimensions of the layout rendered at ratio.
func SheetSize(layout *Layout, ratio float64) (int, int) {
	return int(math.Ceil(float64(layout.Width) * ratio)),
		int(math.Ceil(float64(layout.Height) * ratio))
}

// Composite paints every icon of the layout into a new transparent sheet
// scaled by ratio. Icons are resampled with nearest-neighbor for whole
// ratios and bilinear interpolation otherwise, then copied over the sheet
// without blending. Neither the layout nor the icons are modified.
func Composite(layout *Layout, icons []Icon, ratio float64) (*Sheet, error) {
	if err := validateRatio(ratio); err != nil {
		return nil, err
	}
	filter := imaging.NearestNeighbor
	if !isIntegral(ratio) {
		filter = imaging.Linear
	}

	w, h := SheetSize(layout, ratio)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	idx := iconIndex(icons)

	for _, p := range layout.Placements {
		ic, ok := idx[p.ID]
		if !ok || ic.Image == nil {
			return nil, &Error{
				Code:    ErrCodeInvalidInput,
				Message: "layout references an unknown icon",
				Icon:    p.ID,
				Ratio:   ratio,
			}
		}
		if ic.Width() != p.Width || ic.Height() != p.Height {
			return nil, &Error{
				Code: ErrCodeInvalidInput,
				Message: fmt.Sprintf("icon is %dx%d but was packed as %dx%d",
					ic.Width(), ic.Height(), p.Width, p.Height),
				Icon:  p.ID,
				Ratio: ratio,
			}
		}

		r := ScaleRect(p, ratio)
		if r.Empty() {
			continue
		}
		src := ic.Image
		if r.Dx() != p.Width || r.Dy() != p.Height {
			src = imaging.Resize(ic.Image, r.Dx(), r.Dy(), filter)
		}
		imop.Draw(dst, src, r.Min)
	}

	return &Sheet{Ratio: ratio, Image: dst}, nil
}
