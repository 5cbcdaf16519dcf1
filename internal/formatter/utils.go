package formatter

import (
	"fmt"

	"github.com/yildizm/TrailMap/internal/mapview"
	"github.com/yildizm/go-termfmt"
)

const untitledMap = "Learning Path"

// mapTitle returns the plan goal or a generic heading
func mapTitle(dl *mapview.DrawList) string {
	if dl.Title != "" {
		return dl.Title
	}
	return untitledMap
}

// formatCoord formats a logical coordinate with one decimal
func formatCoord(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// reachedCount counts markers at or behind the progress index
func reachedCount(dl *mapview.DrawList) int {
	n := 0
	for _, m := range dl.Markers {
		if m.Reached {
			n++
		}
	}
	return n
}

// completion returns the share of reached markers in [0, 1]
func completion(dl *mapview.DrawList) float64 {
	if dl.Preview || len(dl.Markers) == 0 {
		return 0
	}
	return float64(reachedCount(dl)) / float64(len(dl.Markers))
}

// openIndex returns the index of the open panel, if any
func openIndex(dl *mapview.DrawList) (int, bool) {
	if dl.Panel == nil {
		return 0, false
	}
	return dl.Panel.Index, true
}

// markerStatus describes a marker for tabular output
func markerStatus(dl *mapview.DrawList, m mapview.Marker) string {
	switch {
	case dl.Preview:
		return "preview"
	case dl.Indicator != nil && dl.Indicator.Index == m.Index:
		return "current"
	case m.Reached:
		return "reached"
	default:
		return "ahead"
	}
}

// progressLabel renders the progress index as "Step i of n"
func progressLabel(dl *mapview.DrawList) string {
	if dl.Preview {
		return "preview"
	}
	if dl.Indicator == nil {
		return fmt.Sprintf("off the map (%d)", dl.Progress)
	}
	return fmt.Sprintf("Step %d of %d", dl.Indicator.Index+1, len(dl.Markers))
}

// createCompletionBar creates an ASCII completion bar using go-termfmt
func createCompletionBar(ratio float64) string {
	opts := termfmt.DefaultOptions()
	return termfmt.CreateConfidenceBar(ratio, opts)
}
