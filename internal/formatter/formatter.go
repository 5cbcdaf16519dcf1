package formatter

import "github.com/yildizm/TrailMap/internal/mapview"

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(dl *mapview.DrawList) ([]byte, error)
}
