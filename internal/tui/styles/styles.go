package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Colors from the catppuccin mocha palette.
var (
	flavor = catppuccin.Mocha

	Primary   = lipgloss.Color(flavor.Mauve().Hex)
	Accent    = lipgloss.Color(flavor.Peach().Hex)
	Good      = lipgloss.Color(flavor.Green().Hex)
	Bad       = lipgloss.Color(flavor.Red().Hex)
	Border    = lipgloss.Color(flavor.Surface1().Hex)
	Text      = lipgloss.Color(flavor.Text().Hex)
	TextMuted = lipgloss.Color(flavor.Subtext0().Hex)
	TextDim   = lipgloss.Color(flavor.Overlay0().Hex)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextMuted)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Playing = lipgloss.NewStyle().
		Foreground(Good)

	Paused = lipgloss.NewStyle().
		Foreground(Accent)

	ErrorText = lipgloss.NewStyle().
			Foreground(Bad)
)

// Panel returns a bordered panel style. The border brightens when the
// panel is focused.
func Panel(focused bool) lipgloss.Style {
	border := Border
	if focused {
		border = Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// PanelTitle renders a panel heading.
func PanelTitle(title string, focused bool) string {
	style := Muted.Bold(true)
	if focused {
		style = Highlight
	}
	return style.Render(title)
}

// StatusIcon returns a play/pause indicator styled by state.
func StatusIcon(playing bool) string {
	if playing {
		return Playing.Render("▶")
	}
	return Paused.Render("⏸")
}
