package styles

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestFormSection(t *testing.T) {
	tests := []struct {
		name         string
		cfg          SectionConfig
		wantContains []string
	}{
		{
			name:         "title only",
			cfg:          SectionConfig{Content: []string{" Ada"}, Title: "Full Name", Width: 30},
			wantContains: []string{"╭─ Full Name ", "│ Ada", "╰"},
		},
		{
			name:         "title and hint",
			cfg:          SectionConfig{Content: []string{" 22"}, Title: "Age", Hint: "10-120", Width: 30},
			wantContains: []string{"╭─ Age (10-120) ", "│ 22"},
		},
		{
			name:         "no title",
			cfg:          SectionConfig{Content: []string{"x"}, Width: 10},
			wantContains: []string{"╭────────╮", "╰────────╯"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormSection(tt.cfg)
			for _, want := range tt.wantContains {
				require.Contains(t, got, want)
			}
		})
	}
}

func TestFormSection_LinesShareWidth(t *testing.T) {
	got := FormSection(SectionConfig{
		Content: []string{"short", "a much longer content line"},
		Title:   "Department",
		Width:   40,
	})

	for _, line := range strings.Split(got, "\n") {
		require.Equal(t, 40, lipgloss.Width(line), "line %q", line)
	}
}

func TestApplyTheme(t *testing.T) {
	accent, errColor, success := AccentColor, StatusErrorColor, StatusSuccessColor
	t.Cleanup(func() {
		AccentColor, StatusErrorColor, StatusSuccessColor = accent, errColor, success
		rebuildStyles()
	})

	ApplyTheme(Theme{Error: "#ff0000"})

	require.Equal(t, lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ff0000"}, StatusErrorColor)
	require.Equal(t, accent, AccentColor, "empty override keeps the default")
	require.Equal(t, success, StatusSuccessColor)
	require.Equal(t, lipgloss.TerminalColor(StatusErrorColor), FieldErrorStyle.GetForeground())
}
