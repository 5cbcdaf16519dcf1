package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/TrailMap/internal/emoji"
	"github.com/yildizm/TrailMap/internal/mapview"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(dl *mapview.DrawList) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, mapTitle(dl))
	f.writeSummary(&b, dl)
	f.writeTrail(&b, dl)

	if dl.Panel != nil {
		f.writePanel(&b, dl.Panel)
	}

	return []byte(b.String()), nil
}

// writeHeader writes a boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder, title string) {
	header := emoji.GetEmoji("summit") + " " + title
	width := len([]rune(header))

	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}

// writeSummary writes progress statistics as a tree
func (f *terminalFormatter) writeSummary(b *strings.Builder, dl *mapview.DrawList) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Progress\n")

	ratio := completion(dl)
	var items []termfmt.TreeItem
	if dl.Preview {
		items = append(items, termfmt.TreeItem{Label: "Mode", Value: fmt.Sprintf("preview (%d dots)", len(dl.Markers))})
	} else {
		items = append(items, termfmt.TreeItem{Label: "Steps", Value: fmt.Sprintf("%d", len(dl.Markers))})
	}
	items = append(items,
		termfmt.TreeItem{Label: "Position", Value: progressLabel(dl)},
		termfmt.TreeItem{
			Label: "Completion",
			Value: fmt.Sprintf("%s %.0f%%", termfmt.CreateConfidenceBar(ratio, f.opts), ratio*100),
			Last:  true,
		},
	)

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeTrail lists the markers from the trailhead up
func (f *terminalFormatter) writeTrail(b *strings.Builder, dl *mapview.DrawList) {
	b.WriteString(emoji.GetEmoji("step") + " Trail\n")

	for i, m := range dl.Markers {
		branch := "├─"
		if i == len(dl.Markers)-1 {
			branch = "└─"
		}
		fmt.Fprintf(b, "%s %s %s (%s, %s)\n", branch, f.markerGlyph(dl, m), f.markerLabel(m),
			formatCoord(m.Point.X), formatCoord(m.Point.Y))
	}
	b.WriteString("\n")
}

func (f *terminalFormatter) markerGlyph(dl *mapview.DrawList, m mapview.Marker) string {
	switch markerStatus(dl, m) {
	case "current":
		return emoji.GetEmoji("climber")
	case "reached":
		return emoji.GetEmoji("flag")
	case "preview":
		return "·"
	default:
		return "○"
	}
}

func (f *terminalFormatter) markerLabel(m mapview.Marker) string {
	if m.Label == "" {
		return fmt.Sprintf("dot %d", m.Index+1)
	}
	if m.Open {
		return m.Label + " [open]"
	}
	return m.Label
}

// writePanel writes the open detail card using go-termfmt trees
func (f *terminalFormatter) writePanel(b *strings.Builder, p *mapview.Panel) {
	symbol := termfmt.GetEmoji("target", f.opts)
	fmt.Fprintf(b, "%s %s: %s\n", symbol, p.Badge, p.Title)
	b.WriteString(strings.Repeat("─", 50) + "\n")
	b.WriteString(p.Description + "\n\n")

	items := []termfmt.TreeItem{}
	if p.HasResources() {
		children := make([]termfmt.TreeItem, 0, len(p.Resources))
		for i, r := range p.Resources {
			children = append(children, termfmt.TreeItem{
				Label: resourceLine(r),
				Value: "",
				Last:  i == len(p.Resources)-1,
			})
		}
		items = append(items, termfmt.TreeItem{
			Label:    emoji.GetEmoji("resource") + " Resources",
			Children: children,
		})
	}
	items = append(items, termfmt.TreeItem{Label: emoji.GetEmoji("time") + " Estimated time", Value: p.EstimatedTime})
	if p.Difficulty != "" {
		items = append(items, termfmt.TreeItem{Label: emoji.GetEmoji("scale") + " Difficulty", Value: p.Difficulty})
	}
	if p.ExpectedOutcome != "" {
		items = append(items, termfmt.TreeItem{Label: emoji.GetEmoji("success") + " Expected outcome", Value: p.ExpectedOutcome})
	}
	items[len(items)-1].Last = true

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n")
}

func resourceLine(r mapview.ResourceItem) string {
	line := r.Label
	if r.Link && r.URL != r.Label {
		line += " <" + r.URL + ">"
	}
	if r.Type != "" {
		line += " (" + r.Type + ")"
	}
	return line
}
