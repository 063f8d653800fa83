package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SamuelSmthSmth/HyprPomo/internal/config"
)

// Theme holds the four configurable colors the UI is drawn with
type Theme struct {
	// Work colors the focus countdown and highlights
	Work lipgloss.Color
	// Break colors the rest countdown and award banner
	Break lipgloss.Color
	// Pause colors the frozen clock
	Pause lipgloss.Color
	// Dim colors chrome: hints, quotes, borders
	Dim lipgloss.Color
}

// ansiNames maps the color names accepted in config.json to ANSI-16
// palette indices, so themes follow the terminal's palette.
var ansiNames = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// Color resolves a configured color. Hex values pass through; named
// colors map to the terminal palette; anything unknown falls back to
// the default foreground.
func Color(name string) lipgloss.Color {
	if strings.HasPrefix(name, "#") {
		return lipgloss.Color(name)
	}
	if code, ok := ansiNames[name]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color("7")
}

// FromColors builds a theme from the configured color names
func FromColors(c config.Colors) Theme {
	return Theme{
		Work:  Color(c.Work),
		Break: Color(c.Break),
		Pause: Color(c.Pause),
		Dim:   Color(c.Dim),
	}
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	// Base styles
	Header lipgloss.Style
	Footer lipgloss.Style

	// Component styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Quote    lipgloss.Style
	Faint    lipgloss.Style

	// Clock styles per phase
	ClockWork   lipgloss.Style
	ClockBreak  lipgloss.Style
	ClockPaused lipgloss.Style

	// Countdown bar styles per phase
	BarWork  lipgloss.Style
	BarBreak lipgloss.Style

	// Task picker styles
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style

	// Award banner styles
	Award     lipgloss.Style
	AwardItem lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Panel styles
	Panel lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		// Base styles
		Header: lipgloss.NewStyle().
			Foreground(t.Work).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Dim).
			Padding(0, 1),

		// Component styles
		Title: lipgloss.NewStyle().
			Foreground(t.Work).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Dim).
			Italic(true),

		Quote: lipgloss.NewStyle().
			Foreground(t.Dim).
			Italic(true),

		Faint: lipgloss.NewStyle().
			Foreground(t.Dim),

		// Clock styles
		ClockWork: lipgloss.NewStyle().
			Foreground(t.Work).
			Bold(true),

		ClockBreak: lipgloss.NewStyle().
			Foreground(t.Break).
			Bold(true),

		ClockPaused: lipgloss.NewStyle().
			Foreground(t.Pause).
			Bold(true),

		// Countdown bar styles
		BarWork: lipgloss.NewStyle().
			Foreground(t.Work),

		BarBreak: lipgloss.NewStyle().
			Foreground(t.Break),

		// Task picker styles
		TaskNormal: lipgloss.NewStyle().
			Padding(0, 1),

		TaskSelected: lipgloss.NewStyle().
			Foreground(t.Work).
			Bold(true).
			Padding(0, 1),

		// Award banner styles
		Award: lipgloss.NewStyle().
			Foreground(t.Break).
			Bold(true),

		AwardItem: lipgloss.NewStyle().
			Foreground(t.Pause),

		// Help styles
		HelpKey: lipgloss.NewStyle().
			Foreground(t.Work).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Dim),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Dim),

		// Panel styles
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Dim).
			Padding(1, 2),
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  FromColors(config.Default().Colors),
	Styles: NewStyles(FromColors(config.Default().Colors)),
}

// SetTheme changes the current theme
func SetTheme(t Theme) {
	Current.Theme = t
	Current.Styles = NewStyles(t)
}
