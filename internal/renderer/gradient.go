package renderer

import (
	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// gradientSynth is the default variant: a vertical gradient whose colour
// pair advances through the palette over time. The elapsed fraction selects
// which two palette entries are active; each row blends from the current
// entry at the top toward the next entry at the bottom.
type gradientSynth struct{}

func (gradientSynth) Synthesize(frameIndex, totalFrames int, pal palette.Palette, f *Frame) {
	progress := float64(frameIndex) / float64(totalFrames)

	current := int(progress*float64(len(pal))) % len(pal)
	next := (current + 1) % len(pal)

	for y := 0; y < config.Height; y++ {
		rowBlend := float64(y) / float64(config.Height)
		r, g, b := blend(pal[current], pal[next], rowBlend)

		// Constant colour across the row: write the first pixel, then
		// replicate it with copies.
		f.setRGB(0, y, uint8(r), uint8(g), uint8(b))
		row := f.img.Pix[y*f.img.Stride : y*f.img.Stride+config.Width*4]
		for filled := 4; filled < len(row); filled *= 2 {
			copy(row[filled:], row[:filled])
		}
	}
}
