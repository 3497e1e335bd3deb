package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// SectionConfig describes a bordered form section.
type SectionConfig struct {
	Content []string
	Width   int
	// Title is rendered inline in the top border; Hint follows it in parentheses.
	Title string
	Hint  string
	// Focused draws the border in the accent color.
	Focused bool
	// Invalid draws the border in the error color. It wins over Focused.
	Invalid bool
}

// FormSection renders a bordered section: ╭─ Title (hint) ───╮ ... ╰───╯.
// Content lines are padded to the inner width.
func FormSection(cfg SectionConfig) string {
	var color lipgloss.TerminalColor = BorderDefaultColor
	switch {
	case cfg.Invalid:
		color = StatusErrorColor
	case cfg.Focused:
		color = AccentColor
	}
	border := lipgloss.NewStyle().Foreground(color)
	title := lipgloss.NewStyle().Bold(true).Foreground(color)

	inner := max(cfg.Width-2, 1)

	var b strings.Builder
	if cfg.Title == "" {
		b.WriteString(border.Render(borderTopLeft + strings.Repeat(borderHorizontal, inner) + borderTopRight))
	} else {
		heading := cfg.Title
		if cfg.Hint != "" {
			heading += " (" + cfg.Hint + ")"
		}
		fill := max(inner-lipgloss.Width(heading)-3, 0)
		b.WriteString(border.Render(borderTopLeft + borderHorizontal + " "))
		b.WriteString(title.Render(cfg.Title))
		if cfg.Hint != "" {
			b.WriteString(" " + HintStyle.Render("("+cfg.Hint+")"))
		}
		b.WriteString(border.Render(" " + strings.Repeat(borderHorizontal, fill) + borderTopRight))
	}

	for _, row := range cfg.Content {
		pad := max(inner-lipgloss.Width(row), 0)
		b.WriteString("\n")
		b.WriteString(border.Render(borderVertical) + row + strings.Repeat(" ", pad) + border.Render(borderVertical))
	}

	b.WriteString("\n")
	b.WriteString(border.Render(borderBottomLeft + strings.Repeat(borderHorizontal, inner) + borderBottomRight))
	return b.String()
}
