package renderer

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// Flower-of-life layout: 7 circles of 80px diameter offset 80px from centre,
// stroked 3px wide, sweeping two full turns over the animation.
const (
	flowerCircles  = 7
	flowerOffset   = 80
	circleDiameter = 80
	strokeWidth    = 3
)

// geometrySynth draws a rotating flower-of-life motif over a black
// background, outline colours cycling through the palette.
type geometrySynth struct{}

func (geometrySynth) Synthesize(frameIndex, totalFrames int, pal palette.Palette, f *Frame) {
	centerX := float64(config.Width / 2)
	centerY := float64(config.Height / 2)

	rotation := float64(frameIndex) / float64(totalFrames) * 360 * 2

	for i := 0; i < flowerCircles; i++ {
		angle := (float64(i*60) + rotation) * math.Pi / 180
		cx := centerX + flowerOffset*math.Cos(angle)
		cy := centerY + flowerOffset*math.Sin(angle)

		c := pal[i%len(pal)]
		strokeCircle(f.img, cx, cy, circleDiameter/2, strokeWidth, color.RGBA{c.R, c.G, c.B, 255})
	}
}

// strokeCircle rasterizes an anti-aliased ring: the stroke is the region
// between two concentric circles with opposite winding.
func strokeCircle(img *image.RGBA, cx, cy, radius, width float64, col color.RGBA) {
	outer := radius + width/2
	inner := radius - width/2

	// Rasterize only the circle's bounding box.
	x0 := int(math.Floor(cx-outer)) - 1
	y0 := int(math.Floor(cy-outer)) - 1
	size := int(math.Ceil(outer*2)) + 3

	z := vector.NewRasterizer(size, size)
	appendCircle(z, cx-float64(x0), cy-float64(y0), outer, false)
	appendCircle(z, cx-float64(x0), cy-float64(y0), inner, true)

	rect := image.Rect(x0, y0, x0+size, y0+size).Intersect(img.Bounds())
	z.Draw(img, rect, image.NewUniform(col), image.Point{})
}

// appendCircle adds a circle path as four cubic Bézier segments. reversed
// flips the winding so an inner circle cuts a hole out of the outer fill.
func appendCircle(z *vector.Rasterizer, cx, cy, r float64, reversed bool) {
	// Magic constant for approximating a quarter circle with one cubic.
	const kappa = 0.5522847498307936
	k := r * kappa

	x := func(v float64) float32 { return float32(v) }

	if !reversed {
		z.MoveTo(x(cx+r), x(cy))
		z.CubeTo(x(cx+r), x(cy+k), x(cx+k), x(cy+r), x(cx), x(cy+r))
		z.CubeTo(x(cx-k), x(cy+r), x(cx-r), x(cy+k), x(cx-r), x(cy))
		z.CubeTo(x(cx-r), x(cy-k), x(cx-k), x(cy-r), x(cx), x(cy-r))
		z.CubeTo(x(cx+k), x(cy-r), x(cx+r), x(cy-k), x(cx+r), x(cy))
	} else {
		z.MoveTo(x(cx+r), x(cy))
		z.CubeTo(x(cx+r), x(cy-k), x(cx+k), x(cy-r), x(cx), x(cy-r))
		z.CubeTo(x(cx-k), x(cy-r), x(cx-r), x(cy-k), x(cx-r), x(cy))
		z.CubeTo(x(cx-r), x(cy+k), x(cx-k), x(cy+r), x(cx), x(cy+r))
		z.CubeTo(x(cx+k), x(cy+r), x(cx+r), x(cy+k), x(cx+r), x(cy))
	}
	z.ClosePath()
}
