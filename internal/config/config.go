package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Video settings
const (
	Width  = 1280
	Height = 720
	FPS    = 30
)

// Audio settings
const (
	SampleRate = 44100
	Channels   = 1
)

// Encoding settings
const (
	VideoCodec  = "libx264"
	AudioCodec  = "aac"
	PixelFormat = "yuv420p"
)

// Defaults for request parameters. DefaultTone is intentionally not a catalog
// entry: any unknown tone name resolves to the hard-coded fallback frequency,
// so the default request always lands on 432 Hz.
const (
	DefaultTheme    = "chakra"
	DefaultTone     = "432hz"
	DefaultDuration = 10
)

// Environment variable names
const (
	EnvAddr   = "CALMWEAVE_ADDR"
	EnvFFmpeg = "CALMWEAVE_FFMPEG"
	EnvTmpDir = "CALMWEAVE_TMPDIR"
)

const defaultAddr = ":5000"

// Load reads a .env file if one is present. A missing file is not an error;
// the environment simply stays as-is.
func Load() {
	_ = godotenv.Load()
}

// Addr returns the HTTP listen address.
func Addr() string {
	if v := os.Getenv(EnvAddr); v != "" {
		return v
	}
	return defaultAddr
}

// FFmpegPath returns the ffmpeg binary to invoke. Empty means "ffmpeg" from PATH.
func FFmpegPath() string {
	return os.Getenv(EnvFFmpeg)
}

// TempDir returns the directory for intermediate and output artifacts.
// Empty means the operating system default.
func TempDir() string {
	return os.Getenv(EnvTmpDir)
}
