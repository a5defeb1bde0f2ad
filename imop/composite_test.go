package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Copy(t *testing.T) {
	assert := assert.New(t)

	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}
	clearCyan := color.NRGBA{R: 33, G: 150, B: 243, A: 0}

	backdrop := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(backdrop, backdrop.Bounds(), &image.Uniform{magenta}, image.Point{}, draw.Src)

	source := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(source, image.Rect(0, 0, 4, 2), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(source, image.Rect(0, 2, 4, 4), &image.Uniform{clearCyan}, image.Point{}, draw.Src)

	// Transparent source pixels replace the backdrop too.
	Draw(backdrop, source, image.Pt(3, 3))
	assert.EqualValues(magenta, backdrop.NRGBAAt(2, 2))
	assert.EqualValues(cyan, backdrop.NRGBAAt(3, 3))
	assert.EqualValues(clearCyan, backdrop.NRGBAAt(3, 5))
	assert.EqualValues(magenta, backdrop.NRGBAAt(7, 7))
}

func TestComp_SubImageSource(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	atlas := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	draw.Draw(atlas, image.Rect(0, 0, 4, 4), &image.Uniform{red}, image.Point{}, draw.Src)
	draw.Draw(atlas, image.Rect(4, 0, 8, 4), &image.Uniform{blue}, image.Point{}, draw.Src)
	src := atlas.SubImage(image.Rect(4, 0, 8, 4)).(*image.NRGBA)

	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Draw(dst, src, image.Point{})
	assert.EqualValues(t, blue, dst.NRGBAAt(0, 0))
	assert.EqualValues(t, blue, dst.NRGBAAt(3, 3))
}

func TestComp_ClipsToBackdrop(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	source := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(source, source.Bounds(), &image.Uniform{red}, image.Point{}, draw.Src)
	bmp := image.NewNRGBA(image.Rect(0, 0, 5, 5))

	Draw(bmp, source, image.Pt(3, 3))
	assert.EqualValues(t, red, bmp.NRGBAAt(4, 4))
	assert.EqualValues(t, color.NRGBA{}, bmp.NRGBAAt(2, 2))

	// Completely outside: nothing painted, no panic.
	Draw(bmp, source, image.Pt(10, 10))
}
