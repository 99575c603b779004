package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/marlot/spin/internal/core"
	"github.com/marlot/spin/internal/tui/styles"
)

// Queue displays the upcoming tracks in traversal order.
type Queue struct{}

// NewQueue creates a new Queue component.
func NewQueue() *Queue {
	return &Queue{}
}

// Render renders the queue panel. The first entry is the current
// track; cursor is an offset into the listed tracks.
func (q *Queue) Render(tracks []core.Track, cursor, width, height int, focused bool) string {
	title := styles.PanelTitle("Up Next", focused)

	visible := height - 4
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor in view
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(tracks) {
		end = len(tracks)
	}

	var lines []string
	for i := start; i < end; i++ {
		t := tracks[i]
		label := t.Title
		if t.Artist != "" {
			label = fmt.Sprintf("%s — %s", t.Artist, t.Title)
		}
		label = truncate(label, width-8)

		prefix := "  "
		style := styles.Subtitle
		switch {
		case i == 0:
			prefix = styles.Playing.Render("♪ ")
			style = styles.Title
		case i == cursor && focused:
			prefix = styles.Highlight.Render("> ")
			style = styles.Highlight
		}
		lines = append(lines, prefix+style.Render(label))
	}

	if len(tracks) == 0 {
		lines = append(lines, styles.Muted.Render("Queue is empty"))
	}

	panel := styles.Panel(focused).Width(width).Height(height)
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{title, ""}, lines...)...,
	))
}

func truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
