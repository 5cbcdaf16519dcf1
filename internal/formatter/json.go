package formatter

import (
	"encoding/json"

	"github.com/yildizm/TrailMap/internal/mapview"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(dl *mapview.DrawList) ([]byte, error) {
	output := &MapOutput{
		Summary: createSummary(dl),
		Map:     dl,
	}

	return json.MarshalIndent(output, "", "  ")
}

// MapOutput is the JSON document: a summary block plus the full draw list
type MapOutput struct {
	Summary *SummaryOutput    `json:"summary"`
	Map     *mapview.DrawList `json:"map"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	Title      string  `json:"title"`
	Steps      int     `json:"steps"`
	Preview    bool    `json:"preview"`
	Progress   int     `json:"progress"`
	OnMap      bool    `json:"on_map"`
	Reached    int     `json:"reached"`
	Completion float64 `json:"completion"`
	OpenStep   *int    `json:"open_step,omitempty"`
}

func createSummary(dl *mapview.DrawList) *SummaryOutput {
	s := &SummaryOutput{
		Title:      mapTitle(dl),
		Preview:    dl.Preview,
		Progress:   dl.Progress,
		OnMap:      dl.Indicator != nil,
		Reached:    reachedCount(dl),
		Completion: completion(dl),
	}
	if !dl.Preview {
		s.Steps = len(dl.Markers)
	}
	if i, ok := openIndex(dl); ok {
		s.OpenStep = &i
	}
	return s
}
