package components

import (
	"strings"
	"testing"
)

func TestProgressBarRender(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{"empty", 0, 4, "[░░░░░░░░] 0/4 0%"},
		{"half", 2, 4, "[████░░░░] 2/4 50%"},
		{"full", 4, 4, "[████████] 4/4 100%"},
		{"overflow", 9, 4, "[████████] 9/4 100%"},
		{"no total", 3, 0, "[░░░░░░░░] 3/0 0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewProgressBar(8)
			bar.Plain = true
			bar.SetProgress(tt.current, tt.total)
			if got := bar.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgressBarLabel(t *testing.T) {
	bar := NewProgressBar(4)
	bar.Plain = true
	bar.SetLabel("Climb")
	bar.SetProgress(1, 2)

	if got := bar.Render(); !strings.HasPrefix(got, "Climb [██░░]") {
		t.Errorf("Expected label prefix, got %q", got)
	}
}

func TestSpinnerTickWraps(t *testing.T) {
	s := NewSpinner()
	for i := 0; i < len(spinnerFrames); i++ {
		s.Tick()
	}
	if s.Frame != 0 {
		t.Errorf("Expected frame to wrap to 0, got %d", s.Frame)
	}

	s.SetLabel("Loading")
	if !strings.Contains(s.Render(), "Loading") {
		t.Errorf("Expected label in spinner output")
	}
}
