package renderer

import (
	"math"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// mandalaSynth evaluates a polar interference pattern per pixel:
// sin(distance*0.02 + t) * sin(angle*8 + t), normalized to [0,1] and mapped
// onto the palette. t sweeps one full 2π cycle across the animation.
type mandalaSynth struct{}

func (mandalaSynth) Synthesize(frameIndex, totalFrames int, pal palette.Palette, f *Frame) {
	t := float64(frameIndex) / float64(totalFrames) * 2 * math.Pi

	centerX := float64(config.Width / 2)
	centerY := float64(config.Height / 2)

	for y := 0; y < config.Height; y++ {
		dy := float64(y) - centerY
		for x := 0; x < config.Width; x++ {
			dx := float64(x) - centerX

			distance := math.Sqrt(dx*dx + dy*dy)
			angle := math.Atan2(dy, dx)

			pattern := math.Sin(distance*0.02+t) * math.Sin(angle*8+t)
			pattern = (pattern + 1) / 2

			c := pal[paletteIndex(pattern, len(pal))]
			f.setRGB(x, y, c.R, c.G, c.B)
		}
	}
}
