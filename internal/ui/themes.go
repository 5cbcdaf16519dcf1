package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// Chrome colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor

	// Map colors
	Mountain  lipgloss.AdaptiveColor
	Trail     lipgloss.AdaptiveColor
	Marker    lipgloss.AdaptiveColor
	Reached   lipgloss.AdaptiveColor
	Open      lipgloss.AdaptiveColor
	Indicator lipgloss.AdaptiveColor
	Selected  lipgloss.AdaptiveColor
}

// buildTheme creates a theme from light/dark color pairs
func buildTheme(name string, primary, secondary, accent, border, muted, errorColor, mountain, trail, marker, reached, open, indicator, selected [2]string) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary: lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Accent:    lipgloss.AdaptiveColor{Light: accent[0], Dark: accent[1]},
		Border:    lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Muted:     lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Error:     lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Mountain:  lipgloss.AdaptiveColor{Light: mountain[0], Dark: mountain[1]},
		Trail:     lipgloss.AdaptiveColor{Light: trail[0], Dark: trail[1]},
		Marker:    lipgloss.AdaptiveColor{Light: marker[0], Dark: marker[1]},
		Reached:   lipgloss.AdaptiveColor{Light: reached[0], Dark: reached[1]},
		Open:      lipgloss.AdaptiveColor{Light: open[0], Dark: open[1]},
		Indicator: lipgloss.AdaptiveColor{Light: indicator[0], Dark: indicator[1]},
		Selected:  lipgloss.AdaptiveColor{Light: selected[0], Dark: selected[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#3B82F6"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#7C3AED", "#A855F7"},
		[2]string{"#D1D5DB", "#374151"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#64748B", "#94A3B8"}, [2]string{"#92400E", "#D97706"}, [2]string{"#111827", "#F9FAFB"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#DC2626", "#F87171"},
		[2]string{"#DBEAFE", "#1E3A8A"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#444444", "#CCCCCC"}, [2]string{"#804000", "#FFAA00"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC6600", "#FFFF00"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#CCCCCC", "#333333"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#E2E8F0", "#2D3748"}, [2]string{"#A0AEC0", "#718096"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#A0AEC0", "#4A5568"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#2D3748", "#F7FAFC"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C05621", "#F6AD55"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#EDF2F7", "#2D3748"})
)

// Current active theme
var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "default":
		SetTheme(&DefaultTheme)
		return true
	case "high-contrast":
		SetTheme(&HighContrastTheme)
		return true
	case "minimal":
		SetTheme(&MinimalTheme)
		return true
	default:
		return false
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// GetStyles builds the styles for the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Subheader: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Open).
			Padding(0, 1),

		Mountain:  lipgloss.NewStyle().Foreground(theme.Mountain),
		Trail:     lipgloss.NewStyle().Foreground(theme.Trail),
		Marker:    lipgloss.NewStyle().Foreground(theme.Marker).Bold(true),
		Reached:   lipgloss.NewStyle().Foreground(theme.Reached).Bold(true),
		Open:      lipgloss.NewStyle().Foreground(theme.Open).Bold(true),
		Indicator: lipgloss.NewStyle().Foreground(theme.Indicator).Bold(true),
		Focused: lipgloss.NewStyle().
			Background(theme.Selected).
			Foreground(theme.Primary).
			Bold(true),
		Link: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Underline(true),
	}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	// Chrome styles
	Title     lipgloss.Style
	Subheader lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Box       lipgloss.Style
	Panel     lipgloss.Style

	// Map styles
	Mountain  lipgloss.Style
	Trail     lipgloss.Style
	Marker    lipgloss.Style
	Reached   lipgloss.Style
	Open      lipgloss.Style
	Indicator lipgloss.Style
	Focused   lipgloss.Style
	Link      lipgloss.Style
}

// render applies style unless colors are disabled
func (s *Styles) render(style lipgloss.Style, text string) string {
	if IsColorDisabled() {
		return text
	}
	return style.Render(text)
}
