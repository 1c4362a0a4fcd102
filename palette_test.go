package mlexplore

import (
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if len(p) != MaxClusterCount {
		t.Fatalf("expected %d colors, got %d", MaxClusterCount, len(p))
	}
	if !p.Distinct() {
		t.Error("default palette colors are not pairwise distinct")
	}
	if got := p.Hex(0); got != "#1f77b4" {
		t.Errorf("Hex(0) = %q, want #1f77b4", got)
	}
	for i := range p {
		if !hexPattern.MatchString(p.Hex(i)) {
			t.Errorf("Hex(%d) = %q, not a lowercase RGB hex string", i, p.Hex(i))
		}
	}
}

func TestGeneratePalette(t *testing.T) {
	for _, n := range []int{2, 10, 16} {
		p := GeneratePalette(n)
		if len(p) != n {
			t.Fatalf("GeneratePalette(%d): got %d colors", n, len(p))
		}
		if !p.Distinct() {
			t.Errorf("GeneratePalette(%d): colors are not pairwise distinct", n)
		}
		for i := range p {
			if !hexPattern.MatchString(p.Hex(i)) {
				t.Errorf("GeneratePalette(%d).Hex(%d) = %q, not an RGB hex string", n, i, p.Hex(i))
			}
		}
	}
}

func TestPaletteDistinctDetectsDuplicates(t *testing.T) {
	p := DefaultPalette()
	p = append(p, p[0])
	if p.Distinct() {
		t.Error("Distinct() should fail when a color repeats")
	}
}
