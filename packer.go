package sprite

import (
	"fmt"
	"image"
	"sort"

	"github.com/esimov/sprite/utils"
)

// Size describes the natural dimensions of an icon to be packed.
type Size struct {
	ID     string
	Width  int
	Height int
}

// Placement is the position of a single icon inside the sheet,
// expressed in ratio-1 units.
type Placement struct {
	ID     string
	X      int
	Y      int
	Width  int
	Height int
}

// Rect returns the placement as an image rectangle.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Layout is the result of a packing run. It is shared read-only between
// every pixel ratio derived from it.
type Layout struct {
	Width      int
	Height     int
	Placements []Placement
}

// Area returns the total area of the sheet.
func (l *Layout) Area() int {
	return l.Width * l.Height
}

// Lookup returns the placement of the icon with the given identifier.
func (l *Layout) Lookup(id string) (Placement, bool) {
	for _, p := range l.Placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// freeRect is an unused region of the sheet.
type freeRect struct {
	x, y, w, h int
}

func (r freeRect) fits(w, h int) bool {
	return w <= r.w && h <= r.h
}

// packer holds the state of a single packing invocation. The free
// rectangles are pairwise disjoint and never overlap a placement.
type packer struct {
	width  int
	height int
	free   []freeRect
}

// Pack computes a non-overlapping placement for every item and the size of
// the enclosing sheet. Placements are returned in input order.
//
// The items are placed largest side first into the smallest free rectangle
// able to hold them. The chosen rectangle is split into the remainder to
// the right of the item and the remainder below it. When no free rectangle
// fits, the sheet grows to the right or downwards, whichever keeps it
// closer to a square, and the placement is retried.
func Pack(items []Size) (*Layout, error) {
	for _, it := range items {
		if it.Width <= 0 || it.Height <= 0 {
			return nil, &Error{
				Code:    ErrCodeInvalidDimension,
				Message: fmt.Sprintf("icon dimensions must be positive, got %dx%d", it.Width, it.Height),
				Icon:    it.ID,
			}
		}
	}

	layout := &Layout{}
	if len(items) == 0 {
		return layout, nil
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := items[order[i]], items[order[j]]
		if ma, mb := utils.Max(a.Width, a.Height), utils.Max(b.Width, b.Height); ma != mb {
			return ma > mb
		}
		if aa, ab := a.Width*a.Height, b.Width*b.Height; aa != ab {
			return aa > ab
		}
		return a.ID < b.ID
	})

	p := &packer{}
	placements := make([]Placement, len(items))
	for _, i := range order {
		it := items[i]
		x, y := p.place(it.Width, it.Height)
		placements[i] = Placement{ID: it.ID, X: x, Y: y, Width: it.Width, Height: it.Height}
	}

	layout.Width = p.width
	layout.Height = p.height
	layout.Placements = placements
	return layout, nil
}

// PackIcons packs the natural sizes of the provided icons.
func PackIcons(icons []Icon) (*Layout, error) {
	sizes := make([]Size, len(icons))
	for i, ic := range icons {
		sizes[i] = ic.Size()
	}
	return Pack(sizes)
}

// place reserves a w x h region and returns its top-left corner.
func (p *packer) place(w, h int) (int, int) {
	idx := p.find(w, h)
	if idx < 0 {
		p.grow(w, h)
		idx = p.find(w, h)
	}
	r := p.free[idx]
	p.free = append(p.free[:idx], p.free[idx+1:]...)

	if r.w > w {
		p.free = append(p.free, freeRect{x: r.x + w, y: r.y, w: r.w - w, h: h})
	}
	if r.h > h {
		p.free = append(p.free, freeRect{x: r.x, y: r.y + h, w: r.w, h: r.h - h})
	}
	return r.x, r.y
}

// find returns the index of the smallest free rectangle holding a w x h
// item, or -1 if there is none. Ties are resolved top-most, then left-most.
func (p *packer) find(w, h int) int {
	best := -1
	for i, r := range p.free {
		if !r.fits(w, h) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := p.free[best]
		switch ra, ba := r.w*r.h, b.w*b.h; {
		case ra < ba:
			best = i
		case ra == ba && (r.y < b.y || (r.y == b.y && r.x < b.x)):
			best = i
		}
	}
	return best
}

// grow enlarges the sheet so that a w x h item fits into a new free
// rectangle along the right or bottom edge.
func (p *packer) grow(w, h int) {
	canRight := h <= p.height
	canDown := w <= p.width

	shouldRight := canRight && p.height >= p.width+w
	shouldDown := canDown && p.width >= p.height+h

	switch {
	case shouldRight:
		p.growRight(w)
	case shouldDown:
		p.growDown(h)
	case canRight && canDown:
		if p.width+w <= p.height+h {
			p.growRight(w)
		} else {
			p.growDown(h)
		}
	case canRight:
		p.growRight(w)
	case canDown:
		p.growDown(h)
	default:
		// The item is larger than the sheet on both axes: widen first,
		// then append a full-width strip below.
		if w > p.width {
			p.addFree(freeRect{x: p.width, y: 0, w: w - p.width, h: p.height})
			p.width = w
		}
		p.growDown(h)
	}
}

func (p *packer) growRight(w int) {
	p.addFree(freeRect{x: p.width, y: 0, w: w, h: p.height})
	p.width += w
}

func (p *packer) growDown(h int) {
	p.addFree(freeRect{x: 0, y: p.height, w: p.width, h: h})
	p.height += h
}

func (p *packer) addFree(r freeRect) {
	if r.w > 0 && r.h > 0 {
		p.free = append(p.free, r)
	}
}
