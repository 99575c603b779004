package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marlot/spin/internal/core"
	"github.com/marlot/spin/internal/engine"
	"github.com/marlot/spin/internal/playlist"
	"github.com/marlot/spin/internal/tui/components"
	"github.com/marlot/spin/internal/tui/styles"
)

const seekStep = 5 * time.Second

// Panel represents which panel is focused.
type Panel int

const (
	PanelNowPlaying Panel = iota
	PanelQueue
)

// tickMsg drives the periodic state refresh.
type tickMsg time.Time

// Model is the main TUI model.
type Model struct {
	ctrl    *playlist.Controller
	eng     *engine.Engine
	refresh time.Duration

	width  int
	height int

	focused Panel
	cursor  int // offset into the upcoming list

	state    core.PlaybackState
	upcoming []core.Track

	nowPlaying *components.NowPlaying
	queueView  *components.Queue

	showHelp bool
	quitting bool
}

// Run starts the full-screen player and blocks until it exits.
func Run(ctrl *playlist.Controller, eng *engine.Engine, refresh time.Duration) error {
	if refresh == 0 {
		refresh = 200 * time.Millisecond
	}
	m := Model{
		ctrl:       ctrl,
		eng:        eng,
		refresh:    refresh,
		nowPlaying: components.NewNowPlaying(),
		queueView:  components.NewQueue(),
		state:      ctrl.Snapshot(),
		upcoming:   ctrl.Upcoming(),
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.state = m.ctrl.Snapshot()
		m.upcoming = m.ctrl.Upcoming()
		if m.cursor >= len(m.upcoming) {
			m.cursor = 0
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp

	case "tab":
		if m.focused == PanelNowPlaying {
			m.focused = PanelQueue
		} else {
			m.focused = PanelNowPlaying
		}

	case " ":
		m.ctrl.Toggle()

	case "n":
		m.ctrl.Next()
		m.cursor = 0

	case "p":
		m.ctrl.Prev()
		m.cursor = 0

	case "left":
		_ = m.eng.SeekBy(-seekStep)

	case "right":
		_ = m.eng.SeekBy(seekStep)

	case "+", "=":
		m.ctrl.SetVolume(m.ctrl.Volume() + 5)

	case "-":
		m.ctrl.SetVolume(m.ctrl.Volume() - 5)

	case "m":
		m.ctrl.SetMuted(!m.ctrl.Muted())

	case "s":
		m.ctrl.Shuffle()
		m.cursor = 0

	case "r":
		if m.ctrl.Mode() == core.ModeSequential {
			m.ctrl.SetMode(core.ModeRandom)
		} else {
			m.ctrl.SetMode(core.ModeSequential)
		}
		m.cursor = 0

	case "e":
		m.ctrl.ClearError()

	case "y":
		if m.state.HasTrack() {
			_ = clipboard.WriteAll(m.state.Track.Path)
		}

	case "j", "down":
		if m.focused == PanelQueue && m.cursor < len(m.upcoming)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.focused == PanelQueue && m.cursor > 0 {
			m.cursor--
		}

	case "enter":
		if m.focused == PanelQueue && m.ctrl.Len() > 0 {
			m.ctrl.Jump((m.ctrl.Index() + m.cursor) % m.ctrl.Len())
			m.cursor = 0
		}
	}

	// Refresh immediately so keys feel responsive.
	m.state = m.ctrl.Snapshot()
	m.upcoming = m.ctrl.Upcoming()
	return m, nil
}

// View renders the interface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	width := m.width - 2
	queueHeight := m.height - 14
	if queueHeight < 5 {
		queueHeight = 5
	}

	sections := []string{
		m.nowPlaying.Render(m.state, width, m.focused == PanelNowPlaying),
		m.queueView.Render(m.upcoming, m.cursor, width, queueHeight, m.focused == PanelQueue),
	}

	if m.showHelp {
		sections = append(sections, m.helpView())
	} else {
		sections = append(sections, styles.Dim.Render("  ? help · q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) helpView() string {
	help := [][2]string{
		{"space", "play/pause"},
		{"n / p", "next / previous track"},
		{"← / →", "seek ±5s"},
		{"+ / -", "volume up / down"},
		{"m", "mute"},
		{"s", "shuffle"},
		{"r", "toggle mode"},
		{"tab", "switch panel"},
		{"j / k", "move in queue"},
		{"enter", "jump to track"},
		{"y", "copy track path"},
		{"e", "clear error"},
		{"q", "quit"},
	}

	var lines []string
	for _, h := range help {
		lines = append(lines, "  "+styles.Highlight.Render(h[0])+"  "+styles.Muted.Render(h[1]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
