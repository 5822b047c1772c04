package game

import "github.com/charmbracelet/lipgloss"

// Theme styles output text. Implementations must not alter the text itself.
type Theme interface {
	Render(tone Tone, s string) string
}

// PlainTheme writes text unstyled.
type PlainTheme struct{}

func (PlainTheme) Render(_ Tone, s string) string { return s }

// Adaptive colors (light/dark terminal detection).
var (
	colorTitle   = lipgloss.AdaptiveColor{Light: "#6B21A8", Dark: "#D8A6FF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#065F46", Dark: "#7EE2B8"}
	colorHint    = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"}
	colorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF6B6B"}
)

// ColorTheme renders messages with lipgloss styles.
type ColorTheme struct {
	styles map[Tone]lipgloss.Style
}

// NewColorTheme returns the default terminal color theme.
func NewColorTheme() *ColorTheme {
	return &ColorTheme{
		styles: map[Tone]lipgloss.Style{
			ToneTitle:   lipgloss.NewStyle().Foreground(colorTitle).Bold(true),
			ToneSuccess: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
			ToneHint:    lipgloss.NewStyle().Foreground(colorHint),
			ToneError:   lipgloss.NewStyle().Foreground(colorError),
		},
	}
}

func (t *ColorTheme) Render(tone Tone, s string) string {
	style, ok := t.styles[tone]
	if !ok {
		return s
	}
	return style.Render(s)
}
