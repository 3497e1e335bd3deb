// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E6E6E6"}
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"}
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#777777"}

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#C8CCD0", Dark: "#5C5C5C"}
	AccentColor        = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF8787"}

	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#FFFFFF"}

	// Buttons
	ButtonTextColor           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonDisabledBgColor     = lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#2D2D2D"}
	ButtonDisabledTextColor   = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#8C8C8C"}
)

// Styles built from the colors above. Rebuilt by ApplyTheme.
var (
	TitleStyle              lipgloss.Style
	DescriptionStyle        lipgloss.Style
	LabelStyle              lipgloss.Style
	RequiredMarkStyle       lipgloss.Style
	HintStyle               lipgloss.Style
	FieldErrorStyle         lipgloss.Style
	SelectionIndicatorStyle lipgloss.Style
	CardStyle               lipgloss.Style

	PrimaryButtonStyle        lipgloss.Style
	PrimaryButtonFocusedStyle lipgloss.Style
	DisabledButtonStyle       lipgloss.Style

	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	DescriptionStyle = lipgloss.NewStyle().Foreground(TextDescriptionColor)
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	RequiredMarkStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	FieldErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor).
		Padding(1, 2)

	base := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	PrimaryButtonStyle = base.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)
	PrimaryButtonFocusedStyle = base.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)
	DisabledButtonStyle = base.
		Foreground(ButtonDisabledTextColor).
		Background(ButtonDisabledBgColor)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastSuccessStyle = toast.BorderForeground(StatusSuccessColor)
	ToastErrorStyle = toast.BorderForeground(StatusErrorColor)
}
