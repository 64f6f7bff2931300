package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stillpond/calmweave/internal/cli"
	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/pipeline"
	"github.com/stillpond/calmweave/internal/server"
	"github.com/stillpond/calmweave/internal/ui"
)

// version is set via ldflags at build time
var version = "dev"

var CLI struct {
	Serve   ServeCmd         `cmd:"" help:"Start the HTTP rendering API."`
	Render  RenderCmd        `cmd:"" help:"Render a single healing video."`
	Version kong.VersionFlag `help:"Show version information."`
}

// ServeCmd runs the HTTP adapter over the render pipeline.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides CALMWEAVE_ADDR)."`
}

func (s *ServeCmd) Run() error {
	config.Load()

	addr := s.Addr
	if addr == "" {
		addr = config.Addr()
	}

	cli.PrintBanner()
	cli.PrintInfo("Listening", addr)

	router := server.NewRouter(func(theme, tone string, duration int) (string, error) {
		return pipeline.Render(theme, tone, duration, nil)
	})
	return router.Run(addr)
}

// RenderCmd renders one video from the command line.
type RenderCmd struct {
	Theme    string `help:"Visual theme." default:"chakra"`
	Tone     string `help:"Healing tone (e.g. 528hz)." default:"432hz"`
	Duration int    `help:"Video length in seconds." default:"10"`
	Output   string `help:"Move the finished video to this path." type:"path"`
	NoUI     bool   `help:"Plain progress output instead of the TUI."`
}

func (r *RenderCmd) Run() error {
	config.Load()

	if r.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %d", r.Duration)
	}

	var path string
	var err error
	if r.NoUI {
		path, err = r.renderPlain()
	} else {
		path, err = r.renderWithUI()
	}
	if err != nil {
		return err
	}

	if r.Output != "" {
		if renameErr := os.Rename(path, r.Output); renameErr != nil {
			return fmt.Errorf("moving output: %w", renameErr)
		}
		path = r.Output
	}

	cli.PrintSuccess(fmt.Sprintf("Video created: %s", path))
	return nil
}

func (r *RenderCmd) renderPlain() (string, error) {
	cli.PrintBanner()
	cli.PrintInfo("Theme", r.Theme)
	cli.PrintInfo("Tone", r.Tone)
	cli.PrintInfo("Duration", fmt.Sprintf("%ds", r.Duration))

	start := time.Now()
	path, err := pipeline.Render(r.Theme, r.Tone, r.Duration, func(frame, totalFrames int) {
		percent := float64(frame) / float64(totalFrames) * 100
		fmt.Printf("  frames: %.0f%%\n", percent)
	})
	if err != nil {
		return "", err
	}

	cli.PrintInfo("Elapsed", cli.FormatDuration(time.Since(start)))
	return path, nil
}

type renderResult struct {
	path string
	err  error
}

func (r *RenderCmd) renderWithUI() (string, error) {
	model := ui.NewModel(r.Theme, r.Tone)
	p := tea.NewProgram(model)

	results := make(chan renderResult, 1)

	go func() {
		start := time.Now()
		totalFrames := r.Duration * config.FPS
		interval := totalFrames / 10
		if interval < 1 {
			interval = 1
		}

		path, err := pipeline.Render(r.Theme, r.Tone, r.Duration, func(frame, total int) {
			p.Send(ui.RenderProgress{Frame: frame, TotalFrames: total})
			if frame+interval >= total {
				// Last observation: generation is about to hand off
				// to the external encoder.
				p.Send(ui.EncodingStarted{})
			}
		})

		if err != nil {
			p.Send(ui.RenderFailed{Err: err})
		} else {
			p.Send(ui.RenderComplete{
				OutputPath:  path,
				TotalFrames: totalFrames,
				Elapsed:     time.Since(start),
			})
		}
		results <- renderResult{path: path, err: err}
	}()

	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("progress UI failed: %w", err)
	}

	res := <-results
	return res.path, res.err
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("calmweave"),
		kong.Description("Weave healing colour fields and solfeggio tones into soothing MP4s."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
