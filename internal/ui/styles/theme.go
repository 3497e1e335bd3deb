package styles

import "github.com/charmbracelet/lipgloss"

// Theme carries color overrides from configuration. Empty strings keep the
// default for that color.
type Theme struct {
	Accent  string
	Error   string
	Success string
}

// ApplyTheme overrides the configured colors and rebuilds every style.
func ApplyTheme(t Theme) {
	if t.Accent != "" {
		AccentColor = lipgloss.AdaptiveColor{Light: t.Accent, Dark: t.Accent}
		ButtonPrimaryFocusBgColor = AccentColor
	}
	if t.Error != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: t.Error, Dark: t.Error}
	}
	if t.Success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: t.Success, Dark: t.Success}
	}
	rebuildStyles()
}
