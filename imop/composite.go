// Package imop paints a source image onto a backdrop at a given offset
// using the Porter-Duff copy operation: source pixels replace the backdrop.
package imop

import "image"

// Draw copies src onto dst with its top-left corner at pt, transparent
// pixels included. Pixels of src falling outside of dst are ignored.
func Draw(dst *image.NRGBA, src *image.NRGBA, pt image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	width := r.Dx() * 4

	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(sb.Min.X+r.Min.X-pt.X, sb.Min.Y+y-pt.Y)
		copy(dst.Pix[di:di+width], src.Pix[si:si+width])
	}
}
