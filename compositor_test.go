package sprite

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite_RatioOne(t *testing.T) {
	icons := []Icon{solidIcon("a", 4, 4, red), solidIcon("b", 2, 4, green)}
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	sheet, err := Composite(layout, icons, 1)
	require.NoError(t, err)

	assert.Equal(t, 1.0, sheet.Ratio)
	assert.Equal(t, image.Rect(0, 0, layout.Width, layout.Height), sheet.Image.Bounds())
	for _, p := range layout.Placements {
		want := red
		if p.ID == "b" {
			want = green
		}
		for y := p.Y; y < p.Y+p.Height; y++ {
			for x := p.X; x < p.X+p.Width; x++ {
				require.Equal(t, want, sheet.Image.NRGBAAt(x, y), "pixel (%d,%d) of %s", x, y, p.ID)
			}
		}
	}
}

func TestComposite_NearestNeighborReplication(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, green)
	img.SetNRGBA(0, 1, blue)
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	icons := []Icon{{ID: "a", Image: img}}

	layout, err := PackIcons(icons)
	require.NoError(t, err)
	sheet, err := Composite(layout, icons, 3)
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 6, 6), sheet.Image.Bounds())
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, img.NRGBAAt(x/3, y/3), sheet.Image.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestComposite_TransparentBackground(t *testing.T) {
	icons := []Icon{solidIcon("big", 10, 10, red), solidIcon("small", 3, 3, green)}
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	sheet, err := Composite(layout, icons, 2)
	require.NoError(t, err)

	painted := 0
	b := sheet.Image.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if sheet.Image.NRGBAAt(x, y).A != 0 {
				painted++
			}
		}
	}
	assert.Equal(t, (10*10+3*3)*4, painted)
}

func TestComposite_FractionalRatio(t *testing.T) {
	icons := []Icon{solidIcon("a", 3, 3, red), solidIcon("b", 3, 2, blue)}
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	sheet, err := Composite(layout, icons, 1.5)
	require.NoError(t, err)

	w, h := SheetSize(layout, 1.5)
	assert.Equal(t, int(math.Ceil(float64(layout.Width)*1.5)), w)
	assert.Equal(t, image.Rect(0, 0, w, h), sheet.Image.Bounds())

	// Solid icons stay solid after bilinear resampling.
	for _, p := range layout.Placements {
		r := ScaleRect(p, 1.5)
		assert.True(t, r.In(sheet.Image.Bounds()))
		c := sheet.Image.NRGBAAt(r.Min.X, r.Min.Y)
		assert.Equal(t, uint8(255), c.A, "icon %s", p.ID)
	}
}

func TestComposite_UnsupportedRatio(t *testing.T) {
	icons := []Icon{solidIcon("a", 2, 2, red)}
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	for _, ratio := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Composite(layout, icons, ratio)
		assert.ErrorIs(t, err, ErrUnsupportedRatio, "ratio %v", ratio)
	}

	_, err = Composite(layout, icons, 0)
	assert.Contains(t, err.Error(), "got 0")
}

func TestComposite_UnknownIcon(t *testing.T) {
	layout, err := Pack([]Size{{ID: "ghost", Width: 2, Height: 2}})
	require.NoError(t, err)

	_, err = Composite(layout, nil, 1)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidInput))
	assert.Contains(t, err.Error(), "ghost")
}

func TestComposite_DoesNotMutateIcons(t *testing.T) {
	icons := []Icon{solidIcon("a", 2, 2, red)}
	before := append([]uint8(nil), icons[0].Image.Pix...)
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	_, err = Composite(layout, icons, 2)
	require.NoError(t, err)
	assert.Equal(t, before, icons[0].Image.Pix)
}

func TestScaleRect(t *testing.T) {
	p := Placement{ID: "a", X: 3, Y: 5, Width: 7, Height: 2}

	assert.Equal(t, image.Rect(3, 5, 10, 7), ScaleRect(p, 1))
	assert.Equal(t, image.Rect(6, 10, 20, 14), ScaleRect(p, 2))
	assert.Equal(t, image.Rect(9, 15, 30, 21), ScaleRect(p, 3))

	// Adjacent placements stay adjacent at fractional ratios.
	left := Placement{X: 0, Y: 0, Width: 3, Height: 1}
	right := Placement{X: 3, Y: 0, Width: 3, Height: 1}
	assert.Equal(t, ScaleRect(left, 1.5).Max.X, ScaleRect(right, 1.5).Min.X)
}
