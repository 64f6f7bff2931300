// Package ui holds the Bubbletea progress model for CLI renders.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stillpond/calmweave/internal/cli"
	"github.com/stillpond/calmweave/internal/palette"
)

// RenderProgress reports frame-generation progress.
type RenderProgress struct {
	Frame       int
	TotalFrames int
}

// EncodingStarted signals that frame generation finished and the external
// encoder is running.
type EncodingStarted struct{}

// RenderComplete signals a finished artifact.
type RenderComplete struct {
	OutputPath  string
	TotalFrames int
	Elapsed     time.Duration
}

// RenderFailed signals a pipeline failure.
type RenderFailed struct {
	Err error
}

// quitMsg fires after the completion screen has been visible briefly.
type quitMsg struct{}

// Model drives the render progress display.
type Model struct {
	progressBar progress.Model

	theme string
	tone  string

	state    RenderProgress
	encoding bool
	complete *RenderComplete
	err      error

	startTime       time.Time
	width           int
	completionDelay time.Duration
}

// NewModel creates a progress model for one render.
func NewModel(theme, tone string) *Model {
	p := progress.New(
		progress.WithGradient(string(cli.CalmIndigo), string(cli.CalmTeal)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return &Model{
		progressBar:     p,
		theme:           theme,
		tone:            tone,
		startTime:       time.Now(),
		completionDelay: 2 * time.Second,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressBar.Width = min(msg.Width-30, 50)
		return m, nil

	case RenderProgress:
		m.state = msg
		return m, nil

	case EncodingStarted:
		m.encoding = true
		return m, nil

	case RenderComplete:
		m.complete = &msg
		return m, tea.Tick(m.completionDelay, func(time.Time) tea.Msg {
			return quitMsg{}
		})

	case RenderFailed:
		m.err = msg.Err
		return m, tea.Quit

	case quitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.complete != nil || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.err != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(cli.CalmViolet).Render("Calmweave 🌊"))
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(cli.CalmTeal).Render(
		fmt.Sprintf("Theme: %s  │  Tone: %s", m.theme, m.tone)))
	s.WriteString("\n\n")

	switch {
	case m.complete != nil:
		m.renderComplete(&s)
	case m.encoding:
		s.WriteString("Frames:   ")
		s.WriteString(m.progressBar.ViewAs(1.0))
		s.WriteString("  100%\n\n")
		s.WriteString(lipgloss.NewStyle().Faint(true).Render("Encoding video and weaving tone..."))
	default:
		m.renderGenerating(&s)
	}

	s.WriteString("\n\n")
	s.WriteString(paletteSwatch(m.theme))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cli.CalmViolet).
		Padding(1, 2).
		Render(s.String())
}

func (m *Model) renderGenerating(s *strings.Builder) {
	if m.state.TotalFrames == 0 {
		s.WriteString(lipgloss.NewStyle().Faint(true).Render("Starting render..."))
		return
	}

	percent := float64(m.state.Frame) / float64(m.state.TotalFrames)
	s.WriteString("Frames:   ")
	s.WriteString(m.progressBar.ViewAs(percent))
	s.WriteString(fmt.Sprintf("  %d%%", int(percent*100)))
	s.WriteString("\n\n")

	elapsed := time.Since(m.startTime)
	s.WriteString(lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("Frame %d of %d  │  Elapsed: %s",
			m.state.Frame, m.state.TotalFrames, cli.FormatDuration(elapsed))))
}

func (m *Model) renderComplete(s *strings.Builder) {
	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(cli.CalmTeal).Render("✓ Render Complete"))
	s.WriteString("\n\n")

	dim := lipgloss.NewStyle().Faint(true)
	s.WriteString(fmt.Sprintf("%s%s\n", dim.Render("Output:  "), m.complete.OutputPath))
	s.WriteString(fmt.Sprintf("%s%d frames in %s\n",
		dim.Render("Video:   "), m.complete.TotalFrames, cli.FormatDuration(m.complete.Elapsed)))
}

// paletteSwatch renders the theme's colours as a strip of blocks.
func paletteSwatch(theme string) string {
	var s strings.Builder
	s.WriteString(lipgloss.NewStyle().Faint(true).Render("Palette: "))
	for _, c := range palette.For(theme) {
		hex := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
		s.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
	}
	return s.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
