package renderer

import (
	"math"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// waveSynth combines three travelling sine waves over x, y, and x+y, each
// mapped to [0,1] and averaged; the average picks a solid palette colour per
// pixel. Time advances at real seconds (frameIndex / FPS).
type waveSynth struct{}

func (waveSynth) Synthesize(frameIndex, totalFrames int, pal palette.Palette, f *Frame) {
	t := float64(frameIndex) / float64(config.FPS)

	// The waves depend only on x, y, and x+y, so each is a 1-D table.
	waveX := make([]float64, config.Width)
	for x := range waveX {
		waveX[x] = math.Sin(float64(x)*0.01+t*2)*0.5 + 0.5
	}
	waveY := make([]float64, config.Height)
	for y := range waveY {
		waveY[y] = math.Sin(float64(y)*0.008+t*1.5)*0.5 + 0.5
	}
	waveXY := make([]float64, config.Width+config.Height)
	for d := range waveXY {
		waveXY[d] = math.Sin(float64(d)*0.005+t)*0.5 + 0.5
	}

	for y := 0; y < config.Height; y++ {
		for x := 0; x < config.Width; x++ {
			combined := (waveX[x] + waveY[y] + waveXY[x+y]) / 3

			c := pal[paletteIndex(combined, len(pal))]
			f.setRGB(x, y, c.R, c.G, c.B)
		}
	}
}
