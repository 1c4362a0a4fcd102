package mlexplore

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered list of cluster colors: label i renders with the
// i-th color. It is fixed for the lifetime of an Explorer, independent of
// the current cluster count.
type Palette []colorful.Color

// minLabDistance is the perceptual (CIE Lab) distance below which two
// palette entries count as indistinguishable.
const minLabDistance = 0.05

// DefaultPalette returns the familiar ten-color "tab10" scheme.
func DefaultPalette() Palette {
	hexes := []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	}
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("mlexplore: malformed palette literal " + h)
		}
		p[i] = c
	}
	return p
}

// GeneratePalette returns n colors with evenly spaced hues at fixed chroma
// and lightness. Useful when more than the ten default colors are needed.
func GeneratePalette(n int) Palette {
	p := make(Palette, n)
	for i := range p {
		h := float64(i) * 360.0 / float64(n)
		p[i] = colorful.Hcl(h, 0.6, 0.55).Clamped()
	}
	return p
}

// Hex returns the i-th color as an RGB hex string, e.g. "#1f77b4".
func (p Palette) Hex(i int) string { return p[i].Hex() }

// Distinct reports whether every pair of colors in the palette is
// perceptually distinguishable.
func (p Palette) Distinct() bool {
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i].DistanceLab(p[j]) < minLabDistance {
				return false
			}
		}
	}
	return true
}
