package renderer

import (
	"image"
	"sync"

	"github.com/stillpond/calmweave/internal/config"
)

// Frame is a single 1280x720 raster. Pixels live in an RGBA buffer drawn
// from a pool; synthesizers write channel values straight into Pix.
type Frame struct {
	img *image.RGBA
}

var framePool = sync.Pool{
	New: func() interface{} {
		return image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))
	},
}

// NewFrame returns a frame cleared to opaque black.
func NewFrame() *Frame {
	f := &Frame{img: framePool.Get().(*image.RGBA)}
	f.clear()
	return f
}

// clear resets every pixel to opaque black, 8 pixels per copy for memory
// bandwidth.
func (f *Frame) clear() {
	blackPattern := [32]byte{
		0, 0, 0, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 0, 0, 0, 255,
	}
	for i := 0; i < len(f.img.Pix); i += 32 {
		copy(f.img.Pix[i:i+32], blackPattern[:])
	}
}

// Fill sets every pixel to one opaque colour.
func (f *Frame) Fill(r, g, b uint8) {
	pattern := [4]byte{r, g, b, 255}
	copy(f.img.Pix[:4], pattern[:])
	for filled := 4; filled < len(f.img.Pix); filled *= 2 {
		copy(f.img.Pix[filled:], f.img.Pix[:filled])
	}
}

// setRGB writes one opaque pixel without the image.Image interface overhead.
func (f *Frame) setRGB(x, y int, r, g, b uint8) {
	offset := y*f.img.Stride + x*4
	f.img.Pix[offset] = r
	f.img.Pix[offset+1] = g
	f.img.Pix[offset+2] = b
	f.img.Pix[offset+3] = 255
}

// Image returns the underlying raster.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Release returns the frame buffer to the pool.
func (f *Frame) Release() {
	if f.img != nil {
		framePool.Put(f.img)
		f.img = nil
	}
}

// ReleaseFrames returns a whole sequence to the pool.
func ReleaseFrames(frames []*Frame) {
	for _, f := range frames {
		f.Release()
	}
}
