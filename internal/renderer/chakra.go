package renderer

import (
	"math"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// Breathing modulation: 0.8 baseline, 0.2 amplitude, period ~62.8 frames.
const (
	breathBase      = 0.8
	breathAmplitude = 0.2
	breathRate      = 0.1
)

// chakraSynth renders a radial gradient that cycles through the palette.
// totalFrames is split into one segment per palette colour; within a segment
// the colour interpolates toward the next entry, and per-pixel intensity
// falls off with distance from centre, modulated by the breathing sinusoid.
type chakraSynth struct{}

func (chakraSynth) Synthesize(frameIndex, totalFrames int, pal palette.Palette, f *Frame) {
	// Segment length clamps to at least one frame so renders shorter than
	// the palette stay defined.
	segment := totalFrames / len(pal)
	if segment < 1 {
		segment = 1
	}

	current := (frameIndex / segment) % len(pal)
	next := (current + 1) % len(pal)
	progress := float64(frameIndex%segment) / float64(segment)

	r, g, b := blend(pal[current], pal[next], progress)

	breathing := breathBase + breathAmplitude*math.Sin(float64(frameIndex)*breathRate)

	centerX := float64(config.Width / 2)
	centerY := float64(config.Height / 2)
	maxDistance := math.Sqrt(centerX*centerX + centerY*centerY)

	for y := 0; y < config.Height; y++ {
		dy := float64(y) - centerY
		for x := 0; x < config.Width; x++ {
			dx := float64(x) - centerX
			distance := math.Sqrt(dx*dx + dy*dy)

			intensity := (1 - distance/maxDistance) * breathing
			if intensity < 0 {
				intensity = 0
			}

			f.setRGB(x, y, uint8(r*intensity), uint8(g*intensity), uint8(b*intensity))
		}
	}
}
