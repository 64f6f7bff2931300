package renderer

import (
	"github.com/stillpond/calmweave/internal/palette"
)

// Synthesizer produces one frame of a themed animation. Implementations are
// pure functions of their arguments: identical inputs yield byte-identical
// frames.
type Synthesizer interface {
	Synthesize(frameIndex, totalFrames int, pal palette.Palette, f *Frame)
}

var synthesizers = map[string]Synthesizer{
	"chakra":          chakraSynth{},
	"sacred_geometry": geometrySynth{},
	"ocean_waves":     waveSynth{},
	"mandala_flow":    mandalaSynth{},
}

// ForTheme selects the synthesizer for a theme name. Themes without a
// dedicated variant render with the vertical gradient.
func ForTheme(name string) Synthesizer {
	if s, ok := synthesizers[name]; ok {
		return s
	}
	return gradientSynth{}
}

// blend linearly interpolates between two palette entries. Each channel is
// truncated to an integer before mixing continues downstream.
func blend(a, b palette.RGB, progress float64) (r, g, bl float64) {
	r = float64(int(float64(a.R)*(1-progress) + float64(b.R)*progress))
	g = float64(int(float64(a.G)*(1-progress) + float64(b.G)*progress))
	bl = float64(int(float64(a.B)*(1-progress) + float64(b.B)*progress))
	return r, g, bl
}

// paletteIndex maps a scalar in [0,1] onto a palette slot, nearest lower
// index, clamped to the valid range.
func paletteIndex(v float64, n int) int {
	idx := int(v * float64(n-1))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}
