package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/TrailMap/internal/emoji"
	"github.com/yildizm/TrailMap/internal/mapview"
	"github.com/yildizm/TrailMap/internal/plan"
	"github.com/yildizm/TrailMap/internal/ui/components"
)

const (
	panelWidth     = 38
	minCanvasCols  = 20
	minCanvasRows  = 6
	chromeRows     = 6
	footerBarWidth = 24
)

// MapModel is the interactive progress map
type MapModel struct {
	width    int
	height   int
	ready    bool
	quitting bool
	state    ViewState

	source   string
	plan     *plan.Plan
	view     *mapview.View
	progress int
	dots     int
	dl       *mapview.DrawList
	err      error

	spinner *components.Spinner
	footer  *components.ProgressBar
	styles  *Styles
}

// NewMapModel creates a map model over view. When p is nil and source names
// a plan file, the model loads it on Init and shows a spinner meanwhile.
func NewMapModel(view *mapview.View, p *plan.Plan, source string, progress int) *MapModel {
	m := &MapModel{
		state:    ViewMap,
		source:   source,
		plan:     p,
		view:     view,
		progress: progress,
		spinner:  components.NewSpinner(),
		footer:   components.NewProgressBar(footerBarWidth),
		styles:   GetStyles(),
	}
	if p == nil && source != "" {
		m.state = ViewLoading
		m.spinner.SetLabel(emoji.GetEmoji("summit") + " Loading " + source)
	}
	m.footer.Plain = IsColorDisabled()
	m.rerender()
	return m
}

// SetDotCount sets the number of preview dots shown without a plan
func (m *MapModel) SetDotCount(n int) {
	m.dots = n
	m.rerender()
}

// State returns the current screen
func (m *MapModel) State() ViewState {
	return m.state
}

// Progress returns the current progress index
func (m *MapModel) Progress() int {
	return m.progress
}

// DrawList returns the most recent render
func (m *MapModel) DrawList() *mapview.DrawList {
	return m.dl
}

// Err returns the last load error, if any
func (m *MapModel) Err() error {
	return m.err
}

// Init starts loading the plan when needed
func (m *MapModel) Init() tea.Cmd {
	if m.state == ViewLoading {
		return tea.Batch(LoadPlanCommand(m.source), tick())
	}
	return nil
}

// Update handles messages and navigation
func (m *MapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tickMsg:
		return m.handleTick()
	case PlanLoadedMsg:
		return m.handlePlanLoaded(msg)
	case PlanErrorMsg:
		return m.handlePlanError(msg)
	}

	return m, nil
}

func (m *MapModel) rerender() {
	m.dl = m.view.Render(mapview.Input{
		Plan:     m.plan,
		Progress: m.progress,
		DotCount: m.dots,
	})

	if m.dl.Preview {
		m.footer.SetProgress(0, 0)
		return
	}
	current := 0
	if m.dl.Indicator != nil {
		current = m.dl.Indicator.Index + 1
	}
	m.footer.SetProgress(current, m.dl.Len())
}

// handleWindowResize handles window resize events
func (m *MapModel) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	return m, nil
}

// handleKeyPress handles keyboard input
func (m *MapModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.toggleHelp()
		return m, nil
	}

	if m.state != ViewMap {
		if msg.String() == "esc" {
			m.state = ViewMap
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.view.Close()
	case "left", "h":
		m.view.FocusPrev()
	case "right", "l":
		m.view.FocusNext()
	case "enter", " ":
		if m.view.Focus() < 0 {
			m.view.FocusNext()
		}
		m.view.ActivateFocused()
	case "n":
		m.progress = mapview.Advance(m.progress, m.plan.Len())
	case "p":
		m.progress = mapview.Retreat(m.progress, m.plan.Len())
	case "r":
		if m.source != "" {
			return m, LoadPlanCommand(m.source)
		}
		return m, nil
	default:
		return m, nil
	}

	m.rerender()
	return m, nil
}

func (m *MapModel) toggleHelp() {
	switch m.state {
	case ViewMap:
		m.state = ViewHelp
	case ViewHelp:
		m.state = ViewMap
	}
}

// handleTick animates the loading spinner
func (m *MapModel) handleTick() (tea.Model, tea.Cmd) {
	if m.state != ViewLoading {
		return m, nil
	}
	m.spinner.Tick()
	return m, tick()
}

// handlePlanLoaded swaps in a new plan. Progress is kept; the open panel is
// kept only while its step still exists.
func (m *MapModel) handlePlanLoaded(msg PlanLoadedMsg) (tea.Model, tea.Cmd) {
	m.plan = msg.Plan
	m.err = nil
	if m.state == ViewLoading {
		m.state = ViewMap
	}
	m.rerender()
	return m, nil
}

// handlePlanError keeps the previous plan on screen
func (m *MapModel) handlePlanError(msg PlanErrorMsg) (tea.Model, tea.Cmd) {
	m.err = msg.Err
	if m.state == ViewLoading {
		m.state = ViewMap
		m.rerender()
	}
	return m, nil
}

// View renders the model
func (m *MapModel) View() string {
	if m.quitting {
		return m.styles.render(m.styles.Title, emoji.GetEmoji("door")+" See you at the summit!") + "\n"
	}
	if !m.ready {
		return "Loading map..."
	}

	switch m.state {
	case ViewLoading:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.spinner.Render())
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderMapView()
	}
}

func (m *MapModel) renderMapView() string {
	title := emoji.GetEmoji("summit") + " " + m.mapTitle()
	header := m.styles.render(m.styles.Title, title)

	cols, rows := m.canvasSize()
	canvas := m.styles.render(m.styles.Box, rasterize(m.dl, cols, rows).render(m.styles))

	body := canvas
	if m.dl.Panel != nil {
		panel := m.renderPanel(m.dl.Panel)
		if m.width >= cols+panelWidth+4 {
			body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", panel)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, canvas, panel)
		}
	}

	parts := []string{header, body, m.renderFooter()}
	if m.err != nil {
		parts = append(parts, m.styles.render(m.styles.Error, emoji.GetEmoji("error")+" "+m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *MapModel) mapTitle() string {
	if m.dl.Preview {
		return "Preview"
	}
	if m.dl.Title != "" {
		return m.dl.Title
	}
	return "Learning Path"
}

// canvasSize returns the raster size left after chrome and the side panel
func (m *MapModel) canvasSize() (int, int) {
	cols := m.width - 4
	if m.dl.Panel != nil && m.width-panelWidth-4 >= minCanvasCols+4 {
		cols -= panelWidth + 1
	}
	rows := m.height - chromeRows
	if cols < minCanvasCols {
		cols = minCanvasCols
	}
	if rows < minCanvasRows {
		rows = minCanvasRows
	}
	return cols, rows
}

func (m *MapModel) renderPanel(p *mapview.Panel) string {
	inner := panelWidth - 4
	wrap := lipgloss.NewStyle().Width(inner)

	lines := []string{
		m.styles.render(m.styles.Subheader, p.Badge),
		m.styles.render(m.styles.Title.Padding(0), p.Title),
		"",
		wrap.Render(p.Description),
	}

	if p.HasResources() {
		lines = append(lines, "", m.styles.render(m.styles.Subheader, emoji.GetEmoji("resource")+" Resources"))
		for _, r := range p.Resources {
			label := r.Label
			if r.Link {
				label = m.styles.render(m.styles.Link, label)
			}
			if r.Type != "" {
				label += " (" + r.Type + ")"
			}
			lines = append(lines, wrap.Render("• "+label))
		}
	}

	lines = append(lines, "", emoji.GetEmoji("time")+" "+p.EstimatedTime)
	if p.Difficulty != "" {
		lines = append(lines, emoji.GetEmoji("scale")+" "+p.Difficulty)
	}
	if p.ExpectedOutcome != "" {
		lines = append(lines, wrap.Render(emoji.GetEmoji("success")+" "+p.ExpectedOutcome))
	}

	return m.styles.render(m.styles.Panel.Width(panelWidth-2), strings.Join(lines, "\n"))
}

func (m *MapModel) renderFooter() string {
	var status string
	switch {
	case m.dl.Preview:
		status = fmt.Sprintf("Preview: %d dots, no plan loaded", m.dl.Len())
	case m.dl.Indicator == nil:
		status = fmt.Sprintf("%s off the map (progress %d)", emoji.GetEmoji("climber"), m.progress)
	default:
		m.footer.SetLabel(emoji.GetEmoji("climber"))
		status = m.footer.Render()
	}

	hints := "←/→ focus • Enter open/close • n/p progress • ? help • q quit"
	return status + "\n" + m.styles.render(m.styles.Muted, hints)
}

func (m *MapModel) renderHelpView() string {
	title := m.styles.render(m.styles.Title, emoji.GetEmoji("help")+" TrailMap Help")

	helpLines := []string{
		"←/→ or h/l    Move focus between steps",
		"Enter/Space   Open or close the focused step",
		"Esc           Close the open step",
		"n / p         Advance or step back progress",
		"r             Reload the plan file",
		"?             Toggle this help",
		"q / Ctrl+C    Quit",
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.styles.render(m.styles.Muted, strings.Join(helpLines, "\n")),
		"",
		m.styles.render(m.styles.Subheader, "Press ? or Esc to go back"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.render(m.styles.Box, content))
}

// NewProgram wraps the model in a full-screen bubbletea program
func NewProgram(m *MapModel) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Run runs the interactive map until the user quits
func Run(m *MapModel) error {
	_, err := NewProgram(m).Run()
	return err
}
