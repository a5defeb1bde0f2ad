package sprite

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_SingleIcon(t *testing.T) {
	icons := []Icon{solidIcon("a", 32, 32, red)}
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	m, err := BuildManifest(layout, icons, 1)
	require.NoError(t, err)

	assert.Equal(t, Manifest{"a": {X: 0, Y: 0, Width: 32, Height: 32, PixelRatio: 1}}, m)
}

func TestManifest_ScalingConsistency(t *testing.T) {
	icons := []Icon{
		solidIcon("a", 12, 7, red),
		solidIcon("b", 5, 9, green),
		solidIcon("c", 3, 3, blue),
	}
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	base, err := BuildManifest(layout, icons, 1)
	require.NoError(t, err)

	for _, ratio := range []int{2, 3, 4} {
		m, err := BuildManifest(layout, icons, float64(ratio))
		require.NoError(t, err)
		require.Len(t, m, len(icons))

		for id, e := range m {
			b := base[id]
			assert.Equal(t, b.X*ratio, e.X)
			assert.Equal(t, b.Y*ratio, e.Y)
			assert.Equal(t, b.Width*ratio, e.Width)
			assert.Equal(t, b.Height*ratio, e.Height)
			assert.Equal(t, float64(ratio), e.PixelRatio)
		}
	}
}

func TestManifest_MatchesPaintedRegions(t *testing.T) {
	icons := []Icon{solidIcon("a", 5, 3, red), solidIcon("b", 4, 4, green), solidIcon("c", 1, 7, blue)}
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	for _, ratio := range []float64{1, 1.5, 2, 2.5} {
		sheet, err := Composite(layout, icons, ratio)
		require.NoError(t, err)
		m, err := BuildManifest(layout, icons, ratio)
		require.NoError(t, err)

		for id, e := range m {
			p, ok := layout.Lookup(id)
			require.True(t, ok)
			r := ScaleRect(p, ratio)
			assert.Equal(t, r.Min.X, e.X)
			assert.Equal(t, r.Min.Y, e.Y)
			assert.Equal(t, r.Dx(), e.Width)
			assert.Equal(t, r.Dy(), e.Height)

			// Corners of the entry rectangle are painted, the icons are opaque.
			assert.NotZero(t, sheet.Image.NRGBAAt(e.X, e.Y).A, "ratio %v icon %s", ratio, id)
			assert.NotZero(t, sheet.Image.NRGBAAt(e.X+e.Width-1, e.Y+e.Height-1).A, "ratio %v icon %s", ratio, id)
		}
	}
}

func TestManifest_CarriesMeta(t *testing.T) {
	plain := solidIcon("plain", 2, 2, red)
	sdf := solidIcon("sdf", 2, 2, green)
	sdf.Meta.SDF = true
	icons := []Icon{plain, sdf}

	layout, err := PackIcons(icons)
	require.NoError(t, err)
	m, err := BuildManifest(layout, icons, 2)
	require.NoError(t, err)

	assert.False(t, m["plain"].SDF)
	assert.True(t, m["sdf"].SDF)
}

func TestManifest_UnsupportedRatio(t *testing.T) {
	icons := []Icon{solidIcon("a", 2, 2, red)}
	layout, err := PackIcons(icons)
	require.NoError(t, err)

	_, err = BuildManifest(layout, icons, -2)
	assert.ErrorIs(t, err, ErrUnsupportedRatio)
}

func TestManifest_Encode(t *testing.T) {
	m := Manifest{
		"b": {X: 4, Y: 0, Width: 2, Height: 2, PixelRatio: 2, SDF: true},
		"a": {X: 0, Y: 0, Width: 4, Height: 4, PixelRatio: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, map[string]any{
		"x": 0.0, "y": 0.0, "width": 4.0, "height": 4.0, "pixelRatio": 2.0,
	}, decoded["a"])
	assert.Equal(t, true, decoded["b"]["sdf"])

	var again bytes.Buffer
	require.NoError(t, m.Encode(&again))
	assert.Equal(t, buf.String(), again.String())
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"a"`)), bytes.Index(buf.Bytes(), []byte(`"b"`)))
}
