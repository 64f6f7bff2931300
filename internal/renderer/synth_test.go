package renderer

import (
	"bytes"
	"testing"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// TestNewFrame_Dimensions verifies frames come out at the fixed resolution,
// cleared to opaque black even when recycled through the pool.
func TestNewFrame_Dimensions(t *testing.T) {
	f := NewFrame()
	defer f.Release()

	b := f.Image().Bounds()
	if b.Dx() != config.Width || b.Dy() != config.Height {
		t.Fatalf("frame is %dx%d, want %dx%d", b.Dx(), b.Dy(), config.Width, config.Height)
	}

	pix := f.Image().Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 0 || pix[i+1] != 0 || pix[i+2] != 0 || pix[i+3] != 255 {
			t.Fatalf("pixel %d not opaque black: %v", i/4, pix[i:i+4])
		}
	}
}

// TestChakra_FrameZero verifies the first frame is the first palette colour
// modulated only by radial falloff and the breathing term at phase zero
// (multiplier 0.8), with peak intensity at the centre pixel.
func TestChakra_FrameZero(t *testing.T) {
	pal := palette.For("chakra")
	f := NewFrame()
	defer f.Release()

	chakraSynth{}.Synthesize(0, 7*config.FPS, pal, f)

	img := f.Image()
	centerOffset := (config.Height/2)*img.Stride + (config.Width/2)*4

	// Centre pixel: distance 0, intensity exactly 0.8.
	wantR := uint8(float64(pal[0].R) * 0.8)
	gotR := img.Pix[centerOffset]
	if gotR != wantR || img.Pix[centerOffset+1] != 0 || img.Pix[centerOffset+2] != 0 {
		t.Errorf("centre pixel = (%d, %d, %d), want (%d, 0, 0)",
			gotR, img.Pix[centerOffset+1], img.Pix[centerOffset+2], wantR)
	}

	// No pixel may be brighter than the centre.
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > gotR {
			t.Fatalf("pixel %d red channel %d exceeds centre %d", i/4, img.Pix[i], gotR)
		}
	}
}

// TestChakra_ShortRenderDoesNotPanic pins the segment-length clamp: a frame
// count smaller than the palette must still render.
func TestChakra_ShortRenderDoesNotPanic(t *testing.T) {
	pal := palette.For("chakra")
	f := NewFrame()
	defer f.Release()

	chakraSynth{}.Synthesize(0, 3, pal, f)
	chakraSynth{}.Synthesize(2, 3, pal, f)
}

// TestGradient_FrameZero verifies row 0 equals the first palette colour
// exactly and the bottom row blends toward the second entry.
func TestGradient_FrameZero(t *testing.T) {
	pal := palette.For("chakra")
	f := NewFrame()
	defer f.Release()

	gradientSynth{}.Synthesize(0, 300, pal, f)

	img := f.Image()

	// Top row: zero vertical blend, zero temporal blend.
	for x := 0; x < config.Width; x++ {
		offset := x * 4
		if img.Pix[offset] != pal[0].R || img.Pix[offset+1] != pal[0].G || img.Pix[offset+2] != pal[0].B {
			t.Fatalf("row 0 pixel %d = (%d, %d, %d), want %v",
				x, img.Pix[offset], img.Pix[offset+1], img.Pix[offset+2], pal[0])
		}
	}

	// Bottom row: blended toward the second palette entry.
	rowBlend := float64(config.Height-1) / float64(config.Height)
	wantR := uint8(int(float64(pal[0].R)*(1-rowBlend) + float64(pal[1].R)*rowBlend))
	wantG := uint8(int(float64(pal[0].G)*(1-rowBlend) + float64(pal[1].G)*rowBlend))
	wantB := uint8(int(float64(pal[0].B)*(1-rowBlend) + float64(pal[1].B)*rowBlend))

	offset := (config.Height - 1) * img.Stride
	if img.Pix[offset] != wantR || img.Pix[offset+1] != wantG || img.Pix[offset+2] != wantB {
		t.Errorf("bottom row = (%d, %d, %d), want (%d, %d, %d)",
			img.Pix[offset], img.Pix[offset+1], img.Pix[offset+2], wantR, wantG, wantB)
	}
}

// TestPerPixelSynthesizers_Deterministic verifies the ocean-wave and mandala
// variants are pure: identical arguments yield byte-identical frames.
func TestPerPixelSynthesizers_Deterministic(t *testing.T) {
	testCases := []struct {
		name  string
		theme string
	}{
		{name: "ocean waves", theme: "ocean_waves"},
		{name: "mandala flow", theme: "mandala_flow"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pal := palette.For(tc.theme)
			synth := ForTheme(tc.theme)

			a := NewFrame()
			b := NewFrame()
			defer a.Release()
			defer b.Release()

			synth.Synthesize(17, 90, pal, a)
			synth.Synthesize(17, 90, pal, b)

			if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
				t.Error("two renders with identical arguments differ")
			}
		})
	}
}

// TestGeometry_DrawsOnBlackBackground verifies the sacred-geometry frame
// keeps a black background with coloured circle outlines on top.
func TestGeometry_DrawsOnBlackBackground(t *testing.T) {
	pal := palette.For("sacred_geometry")
	f := NewFrame()
	defer f.Release()

	geometrySynth{}.Synthesize(0, 300, pal, f)

	img := f.Image()

	// Far corner is untouched background.
	if img.Pix[0] != 0 || img.Pix[1] != 0 || img.Pix[2] != 0 {
		t.Errorf("corner pixel = (%d, %d, %d), want black", img.Pix[0], img.Pix[1], img.Pix[2])
	}

	// Some pixels must be lit by the outlines.
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("no circle outlines rendered")
	}
}

// TestForTheme_Fallback verifies unknown themes dispatch to the gradient
// variant.
func TestForTheme_Fallback(t *testing.T) {
	pal := palette.For("chakra")

	fromUnknown := NewFrame()
	fromGradient := NewFrame()
	defer fromUnknown.Release()
	defer fromGradient.Release()

	ForTheme("does_not_exist").Synthesize(5, 60, pal, fromUnknown)
	gradientSynth{}.Synthesize(5, 60, pal, fromGradient)

	if !bytes.Equal(fromUnknown.Image().Pix, fromGradient.Image().Pix) {
		t.Error("unknown theme did not render as the gradient fallback")
	}
}

// TestPaletteIndex_Clamps verifies scalar-to-slot mapping stays in range at
// the extremes.
func TestPaletteIndex_Clamps(t *testing.T) {
	testCases := []struct {
		v    float64
		n    int
		want int
	}{
		{0, 5, 0},
		{1, 5, 4},
		{0.5, 5, 2},
		{-0.1, 5, 0},
		{1.1, 5, 4},
	}

	for _, tc := range testCases {
		if got := paletteIndex(tc.v, tc.n); got != tc.want {
			t.Errorf("paletteIndex(%v, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
}
