package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/TrailMap/internal/plan"
)

// PlanLoadedMsg replaces the plan shown by the map model
type PlanLoadedMsg struct {
	Plan *plan.Plan
}

// PlanErrorMsg reports a failed (re)load; the previous plan stays on screen
type PlanErrorMsg struct {
	Err error
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// LoadPlanCommand creates a tea command that reads a plan file
func LoadPlanCommand(path string) tea.Cmd {
	return func() tea.Msg {
		p, err := plan.LoadFile(path)
		if err != nil {
			return PlanErrorMsg{Err: err}
		}
		return PlanLoadedMsg{Plan: p}
	}
}
