package app

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/regform/internal/ui/styles"
)

const logPanelLines = 6

// logPanel keeps the most recent log lines for display under the form.
// Entries are plain text, so truncation is by cell width alone.
type logPanel struct {
	lines []string
}

func (p logPanel) append(line string) logPanel {
	line = strings.TrimRight(line, "\n")
	lines := append(append([]string(nil), p.lines...), line)
	if len(lines) > logPanelLines {
		lines = lines[len(lines)-logPanelLines:]
	}
	p.lines = lines
	return p
}

// view renders the panel at width, truncating long lines.
func (p logPanel) view(width int) string {
	inner := max(width-3, 1)
	rows := make([]string, 0, logPanelLines)
	for _, l := range p.lines {
		rows = append(rows, " "+styles.HintStyle.Render(runewidth.Truncate(l, inner, "…")))
	}
	for len(rows) < logPanelLines {
		rows = append(rows, "")
	}
	return styles.FormSection(styles.SectionConfig{
		Content: rows,
		Width:   width,
		Title:   "Debug Log",
		Hint:    "--debug",
	})
}
