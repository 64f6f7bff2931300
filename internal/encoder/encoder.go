// Package encoder assembles rendered frames into an MP4 and attaches the
// healing tone, both through ffmpeg invocations.
package encoder

import (
	"fmt"
	"io"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/renderer"
)

// EncodeFrames writes the frame sequence to outputPath as H.264/yuv420p at
// the fixed resolution and frame rate. Frames are repacked from RGBA to the
// encoder's RGB24 wire format and piped to ffmpeg's stdin in sequence order.
// The output file is incomplete and invalid if encoding is interrupted.
func EncodeFrames(frames []*renderer.Frame, outputPath string) error {
	pr, pw := io.Pipe()
	defer pr.Close()

	go func() {
		buf := make([]byte, config.Width*config.Height*3)
		for _, f := range frames {
			packRGB24(f, buf)
			if _, err := pw.Write(buf); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.Close()
	}()

	stream := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgb24",
		"s":       fmt.Sprintf("%dx%d", config.Width, config.Height),
		"r":       config.FPS,
	}).
		Output(outputPath, ffmpeg.KwArgs{
			"c:v":     config.VideoCodec,
			"pix_fmt": config.PixelFormat,
			"r":       config.FPS,
		}).
		OverWriteOutput().
		WithInput(pr).
		Silent(true)

	if err := withFFmpegPath(stream).Run(); err != nil {
		return fmt.Errorf("video encoding failed: %w", err)
	}
	return nil
}

// packRGB24 drops the alpha channel, converting a frame's RGBA buffer to
// the packed RGB24 layout ffmpeg expects on the rawvideo pipe.
func packRGB24(f *renderer.Frame, dst []byte) {
	img := f.Image()
	di := 0
	for y := 0; y < config.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+config.Width*4]
		for x := 0; x < config.Width*4; x += 4 {
			dst[di] = row[x]
			dst[di+1] = row[x+1]
			dst[di+2] = row[x+2]
			di += 3
		}
	}
}

// withFFmpegPath applies the configured ffmpeg binary override, if any.
func withFFmpegPath(s *ffmpeg.Stream) *ffmpeg.Stream {
	if p := config.FFmpegPath(); p != "" {
		return s.SetFfmpegPath(p)
	}
	return s
}
