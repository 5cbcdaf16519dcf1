package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/yildizm/TrailMap/internal/mapview"
)

// csvFormatter formats the marker list as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(dl *mapview.DrawList) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Index",
		"Label",
		"X",
		"Y",
		"Left",
		"Top",
		"Status",
		"Open",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, m := range dl.Markers {
		record := []string{
			strconv.Itoa(m.Index),
			escapeCSVString(m.Label),
			strconv.FormatFloat(m.Point.X, 'f', 4, 64),
			strconv.FormatFloat(m.Point.Y, 'f', 4, 64),
			strconv.FormatFloat(m.Left, 'f', 2, 64),
			strconv.FormatFloat(m.Top, 'f', 2, 64),
			markerStatus(dl, m),
			strconv.FormatBool(m.Open),
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// escapeCSVString flattens newlines and truncates long labels
func escapeCSVString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	if len(s) > 100 {
		s = s[:97] + "..."
	}

	return s
}
