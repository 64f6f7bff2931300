package encoder

import (
	"fmt"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// AttachTone replaces the file at videoPath with a copy that carries a
// sine-tone audio track at the named tone's frequency. The video stream is
// copied, the audio is AAC-encoded, and the result is truncated to the
// shorter of the two streams. The swap is atomic: on any failure videoPath
// is left as it was.
func AttachTone(videoPath, tone string, duration int) error {
	frequency := palette.Frequency(tone)

	audioFile, err := os.CreateTemp(config.TempDir(), "calmweave-tone-*.wav")
	if err != nil {
		return fmt.Errorf("allocating tone file: %w", err)
	}
	audioPath := audioFile.Name()
	audioFile.Close()
	defer os.Remove(audioPath)

	if err := synthesizeTone(audioPath, frequency, duration); err != nil {
		return err
	}

	muxFile, err := os.CreateTemp(config.TempDir(), "calmweave-mux-*.mp4")
	if err != nil {
		return fmt.Errorf("allocating mux file: %w", err)
	}
	muxPath := muxFile.Name()
	muxFile.Close()

	if err := mux(videoPath, audioPath, muxPath); err != nil {
		os.Remove(muxPath)
		return err
	}

	if err := os.Rename(muxPath, videoPath); err != nil {
		os.Remove(muxPath)
		return fmt.Errorf("replacing video: %w", err)
	}
	return nil
}

// synthesizeTone generates duration seconds of a pure sine wave at the given
// frequency, mono 44.1kHz, via ffmpeg's lavfi sine source.
func synthesizeTone(wavPath string, frequency, duration int) error {
	stream := ffmpeg.Input(
		fmt.Sprintf("sine=frequency=%d:duration=%d", frequency, duration),
		ffmpeg.KwArgs{"f": "lavfi"},
	).
		Output(wavPath, ffmpeg.KwArgs{
			"ar": config.SampleRate,
			"ac": config.Channels,
		}).
		OverWriteOutput().
		Silent(true)

	if err := withFFmpegPath(stream).Run(); err != nil {
		return fmt.Errorf("tone synthesis failed: %w", err)
	}
	return nil
}

// mux combines the video (stream-copied) with the audio (re-encoded),
// truncating the output to the shortest input.
func mux(videoPath, audioPath, outputPath string) error {
	video := ffmpeg.Input(videoPath)
	audio := ffmpeg.Input(audioPath)

	stream := ffmpeg.Output([]*ffmpeg.Stream{video, audio}, outputPath, ffmpeg.KwArgs{
		"c:v":      "copy",
		"c:a":      config.AudioCodec,
		"shortest": "",
	}).
		OverWriteOutput().
		Silent(true)

	if err := withFFmpegPath(stream).Run(); err != nil {
		return fmt.Errorf("muxing failed: %w", err)
	}
	return nil
}
