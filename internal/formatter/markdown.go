package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/TrailMap/internal/mapview"
)

// now is replaced in tests to pin the report timestamp
var now = time.Now

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(dl *mapview.DrawList) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", mapTitle(dl))
	fmt.Fprintf(&b, "Generated: %s\n\n", now().Format("2006-01-02 15:04:05"))

	f.writeSummaryTable(&b, dl)
	f.writeTrailTable(&b, dl)

	if dl.Panel != nil {
		f.writePanelSection(&b, dl.Panel)
	}

	b.WriteString("---\n")
	b.WriteString("*Map generated by TrailMap*\n")

	return []byte(b.String()), nil
}

// writeSummaryTable writes the progress summary
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, dl *mapview.DrawList) {
	b.WriteString("## Summary\n\n")

	ratio := completion(dl)

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	if dl.Preview {
		fmt.Fprintf(b, "| Mode | Preview (%d dots) |\n", len(dl.Markers))
	} else {
		fmt.Fprintf(b, "| Steps | %d |\n", len(dl.Markers))
	}
	fmt.Fprintf(b, "| Progress | %s |\n", progressLabel(dl))
	fmt.Fprintf(b, "| Completion | %s %.0f%% |\n", createCompletionBar(ratio), ratio*100)
	fmt.Fprintf(b, "| Canvas | %sx%s |\n\n", formatCoord(dl.Canvas.Width), formatCoord(dl.Canvas.Height))
}

// writeTrailTable writes one row per marker
func (f *markdownFormatter) writeTrailTable(b *strings.Builder, dl *mapview.DrawList) {
	b.WriteString("## Trail\n\n")

	if len(dl.Markers) == 0 {
		b.WriteString("_No markers._\n\n")
		return
	}

	b.WriteString("| # | Step | x | y | Left % | Top % | Status |\n")
	b.WriteString("|---|------|---|---|--------|-------|--------|\n")
	for _, m := range dl.Markers {
		label := m.Label
		if label == "" {
			label = "·"
		}
		if m.Open {
			label = "**" + label + "**"
		}
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			m.Index+1, escapeMarkdownCell(label),
			formatCoord(m.Point.X), formatCoord(m.Point.Y),
			formatCoord(m.Left), formatCoord(m.Top),
			markerStatus(dl, m))
	}
	b.WriteString("\n")
}

// writePanelSection writes the open detail card
func (f *markdownFormatter) writePanelSection(b *strings.Builder, p *mapview.Panel) {
	fmt.Fprintf(b, "## %s: %s\n\n", p.Badge, p.Title)
	fmt.Fprintf(b, "%s\n\n", p.Description)

	if p.HasResources() {
		b.WriteString("### Resources\n\n")
		for _, r := range p.Resources {
			line := r.Label
			if r.Link {
				line = fmt.Sprintf("[%s](%s)", r.Label, r.URL)
			}
			if r.Type != "" {
				line += fmt.Sprintf(" (%s)", r.Type)
			}
			fmt.Fprintf(b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "**Estimated time**: %s\n", p.EstimatedTime)
	if p.Difficulty != "" {
		fmt.Fprintf(b, "**Difficulty**: %s\n", p.Difficulty)
	}
	if p.ExpectedOutcome != "" {
		fmt.Fprintf(b, "**Expected outcome**: %s\n", p.ExpectedOutcome)
	}
	b.WriteString("\n")
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
