package sprite

import (
	"image"

	"github.com/disintegration/imaging"
)

// Meta holds the optional per-icon flags carried verbatim into the manifest.
type Meta struct {
	// SDF marks an icon which can be recolored at runtime.
	SDF bool
}

// Icon is a single decoded source image identified by a unique name.
// Icons are read-only once created.
type Icon struct {
	ID    string
	Image *image.NRGBA
	Meta  Meta
}

// NewIcon converts img to an NRGBA buffer anchored at the origin.
// The source image is never retained, so later changes to it do not
// leak into the icon.
func NewIcon(id string, img image.Image, meta Meta) Icon {
	return Icon{
		ID:    id,
		Image: imaging.Clone(img),
		Meta:  meta,
	}
}

// Width returns the natural width of the icon.
func (ic Icon) Width() int {
	if ic.Image == nil {
		return 0
	}
	return ic.Image.Bounds().Dx()
}

// Height returns the natural height of the icon.
func (ic Icon) Height() int {
	if ic.Image == nil {
		return 0
	}
	return ic.Image.Bounds().Dy()
}

// Size returns the packing input describing the icon.
func (ic Icon) Size() Size {
	return Size{ID: ic.ID, Width: ic.Width(), Height: ic.Height()}
}

// iconIndex maps every icon identifier to its icon. The first occurrence wins.
func iconIndex(icons []Icon) map[string]Icon {
	idx := make(map[string]Icon, len(icons))
	for _, ic := range icons {
		if _, ok := idx[ic.ID]; !ok {
			idx[ic.ID] = ic
		}
	}
	return idx
}
