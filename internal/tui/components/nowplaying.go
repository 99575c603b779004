package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/marlot/spin/internal/core"
	"github.com/marlot/spin/internal/tui/styles"
)

// NowPlaying displays the current track and playback status.
type NowPlaying struct {
	bar progress.Model
}

// NewNowPlaying creates a new NowPlaying component.
func NewNowPlaying() *NowPlaying {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	return &NowPlaying{bar: bar}
}

// Render renders the now playing panel.
func (n *NowPlaying) Render(state core.PlaybackState, width int, focused bool) string {
	title := styles.PanelTitle("Now Playing", focused)

	var content string
	if !state.HasTrack() {
		content = styles.Muted.Render("No track loaded")
	} else {
		content = n.renderTrack(state, width-4)
	}

	panel := styles.Panel(focused).Width(width)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (n *NowPlaying) renderTrack(state core.PlaybackState, width int) string {
	track := state.Track

	icon := styles.StatusIcon(state.IsPlaying)
	if state.Loading {
		icon = styles.Dim.Render("…")
	}
	title := styles.Title.Render(track.Title)

	artist := ""
	if track.Artist != "" {
		artist = "  " + styles.Subtitle.Render(track.Artist)
	}

	// Progress bar with times on either side
	barWidth := width - 14
	if barWidth < 10 {
		barWidth = 10
	}
	n.bar.Width = barWidth
	bar := n.bar.ViewAs(state.ProgressPercent() / 100)
	progressLine := fmt.Sprintf("%s %s %s",
		formatClock(state.Position),
		bar,
		formatClock(state.Duration),
	)

	status := statusLine(state)

	lines := []string{
		icon + " " + title,
	}
	if artist != "" {
		lines = append(lines, artist)
	}
	lines = append(lines, "", progressLine, "", status)

	if state.Err != "" {
		lines = append(lines, styles.ErrorText.Render("⚠ "+state.Err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusLine(state core.PlaybackState) string {
	volume := fmt.Sprintf("🔊 %d%%", state.Volume)
	if state.Muted {
		volume = "🔇 muted"
	}
	position := fmt.Sprintf("track %d/%d", state.Index+1, state.Count)
	return styles.Muted.Render(fmt.Sprintf("%s  ·  %s  ·  %s mode", volume, position, state.Mode))
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	m := total / 60
	s := total % 60
	if m >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", m/60, m%60, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
