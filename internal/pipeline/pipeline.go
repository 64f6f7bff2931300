// Package pipeline sequences frame generation, video assembly, and tone
// muxing for one render request.
package pipeline

import (
	"fmt"
	"os"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/encoder"
	"github.com/stillpond/calmweave/internal/renderer"
)

// Render produces a finished healing video and returns its path. The output
// lives at a temporary path; ownership passes to the caller on success. On
// any failure the allocated path is removed before the error propagates.
// onProgress (optional) receives frame-generation progress.
func Render(theme, tone string, duration int, onProgress renderer.ProgressFunc) (string, error) {
	if duration <= 0 {
		return "", fmt.Errorf("duration must be positive, got %d", duration)
	}

	out, err := os.CreateTemp(config.TempDir(), "calmweave-*.mp4")
	if err != nil {
		return "", fmt.Errorf("allocating output file: %w", err)
	}
	outputPath := out.Name()
	out.Close()

	if err := run(outputPath, theme, tone, duration, onProgress); err != nil {
		if _, statErr := os.Stat(outputPath); statErr == nil {
			os.Remove(outputPath)
		}
		return "", fmt.Errorf("creating video: %w", err)
	}

	return outputPath, nil
}

func run(outputPath, theme, tone string, duration int, onProgress renderer.ProgressFunc) error {
	frames := renderer.GenerateFrames(theme, duration, onProgress)
	defer renderer.ReleaseFrames(frames)

	if err := encoder.EncodeFrames(frames, outputPath); err != nil {
		return err
	}
	return encoder.AttachTone(outputPath, tone, duration)
}
