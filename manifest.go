package sprite

import (
	"encoding/json"
	"io"
)

// Entry describes where an icon landed inside a sheet of a given ratio.
type Entry struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	PixelRatio float64 `json:"pixelRatio"`
	SDF        bool    `json:"sdf,omitempty"`
}

// Manifest maps icon identifiers to their entries for a single ratio.
type Manifest map[string]Entry

// BuildManifest returns the manifest of the layout scaled by ratio.
// Rectangles follow ScaleRect, the same rule the compositor paints with.
func BuildManifest(layout *Layout, icons []Icon, ratio float64) (Manifest, error) {
	if err := validateRatio(ratio); err != nil {
		return nil, err
	}
	idx := iconIndex(icons)

	m := make(Manifest, len(layout.Placements))
	for _, p := range layout.Placements {
		ic, ok := idx[p.ID]
		if !ok {
			return nil, &Error{
				Code:    ErrCodeInvalidInput,
				Message: "layout references an unknown icon",
				Icon:    p.ID,
				Ratio:   ratio,
			}
		}
		r := ScaleRect(p, ratio)
		m[p.ID] = Entry{
			X:          r.Min.X,
			Y:          r.Min.Y,
			Width:      r.Dx(),
			Height:     r.Dy(),
			PixelRatio: ratio,
			SDF:        ic.Meta.SDF,
		}
	}
	return m, nil
}

// Encode writes the manifest as indented JSON. Keys are emitted in sorted
// order, so equal manifests always encode to the same bytes.
func (m Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
