package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders how far along the trail the climber is
type ProgressBar struct {
	Width   int
	Current int
	Total   int
	Label   string
	Plain   bool
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{Width: width}
}

// SetProgress updates the progress
func (p *ProgressBar) SetProgress(current, total int) {
	p.Current = current
	p.Total = total
}

// SetLabel sets the progress label
func (p *ProgressBar) SetLabel(label string) {
	p.Label = label
}

// Ratio returns the filled share in [0, 1]
func (p *ProgressBar) Ratio() float64 {
	if p.Total <= 0 || p.Current <= 0 {
		return 0
	}
	r := float64(p.Current) / float64(p.Total)
	if r > 1 {
		return 1
	}
	return r
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	// Define styles locally to avoid import cycle
	progressStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	width := p.Width
	if width < 1 {
		width = 1
	}
	percentage := p.Ratio()
	filledWidth := int(float64(width) * percentage)
	emptyWidth := width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)

	bar := filled + empty
	if !p.Plain {
		bar = progressStyle.Render(filled) + mutedStyle.Render(empty)
	}

	result := fmt.Sprintf("[%s] %d/%d %.0f%%", bar, p.Current, p.Total, percentage*100)

	if p.Label != "" {
		result = p.Label + " " + result
	}

	return result
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner represents a spinning progress indicator
type Spinner struct {
	Frame int
	Label string
}

// NewSpinner creates a new spinner
func NewSpinner() *Spinner {
	return &Spinner{}
}

// SetLabel sets the spinner label
func (s *Spinner) SetLabel(label string) {
	s.Label = label
}

// Tick advances the spinner animation
func (s *Spinner) Tick() {
	s.Frame = (s.Frame + 1) % len(spinnerFrames)
}

// Render renders the spinner
func (s *Spinner) Render() string {
	progressStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)

	spinner := progressStyle.Render(spinnerFrames[s.Frame])

	if s.Label != "" {
		return fmt.Sprintf("%s %s", spinner, s.Label)
	}

	return spinner
}
