package renderer

import (
	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// ProgressFunc receives advisory progress observations during frame
// generation. frame is the index just rendered.
type ProgressFunc func(frame, totalFrames int)

// GenerateFrames materializes the full frame sequence for one render:
// duration*FPS frames in playback order, each produced by the theme's
// synthesizer with the theme's palette. onProgress (optional) fires at
// roughly every 10% of completion.
func GenerateFrames(theme string, duration int, onProgress ProgressFunc) []*Frame {
	totalFrames := duration * config.FPS
	pal := palette.For(theme)
	synth := ForTheme(theme)

	interval := totalFrames / 10
	if interval < 1 {
		interval = 1
	}

	frames := make([]*Frame, 0, totalFrames)
	for i := 0; i < totalFrames; i++ {
		f := NewFrame()
		synth.Synthesize(i, totalFrames, pal, f)
		frames = append(frames, f)

		if onProgress != nil && i%interval == 0 {
			onProgress(i, totalFrames)
		}
	}

	return frames
}
