package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/bind"
	"github.com/five82/shelf/internal/board"
)

// Pane keys, also used as Watch keys.
const (
	paneCount = "count"
	paneClock = "clock"
	paneTheme = "theme"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *bind.Bound[board.Board]
}

// Model is the Bubble Tea model. Each pane is an independent consumer of the
// store with its own slice; a pane's change counter moves only when its own
// slice changed.
type Model struct {
	ctx   context.Context
	store *bind.Bound[board.Board]

	count *bind.Slice[board.Board, int]
	clock *bind.Slice[board.Board, board.Clock]
	theme *bind.Slice[board.Board, string]

	changes map[string]int
	last    string

	keys  keyMap
	help  help.Model
	width int
}

type ctxDoneMsg struct{}

// New creates the model and subscribes its panes. Call Close when done.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return Model{
		ctx:     ctx,
		store:   opts.Store,
		count:   bind.Use(opts.Store, board.Count),
		clock:   bind.Use(opts.Store, board.ClockOf),
		theme:   bind.Use(opts.Store, board.Theme),
		changes: make(map[string]int),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.watch(paneCount),
		m.watch(paneClock),
		m.watch(paneTheme),
		waitDone(m.ctx),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bind.ChangedMsg:
		m.changes[msg.Key]++
		m.last = msg.Key
		return m, m.watch(msg.Key)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ctxDoneMsg:
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model. The whole frame is drawn from one pinned state.
func (m Model) View() string {
	return bind.Render(m.store, func(b *board.Board) string {
		styles := GetTheme(m.theme.At(b)).Styles()

		panes := lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderCount(b, styles),
			m.renderClock(b, styles),
			m.renderTheme(b, styles),
		)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(b, styles),
			panes,
			m.help.View(m.keys),
		)
	})
}

// Close unsubscribes every pane.
func (m Model) Close() {
	m.count.Close()
	m.clock.Close()
	m.theme.Close()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.store.GetState()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Inc):
		b.Inc()
	case key.Matches(msg, m.keys.Dec):
		b.Dec()
	case key.Matches(msg, m.keys.Reset):
		b.Reset()
	case key.Matches(msg, m.keys.CycleTheme):
		b.SetTheme(NextTheme(b.Theme))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) watch(pane string) tea.Cmd {
	switch pane {
	case paneCount:
		return m.count.Watch(pane)
	case paneClock:
		return m.clock.Watch(pane)
	case paneTheme:
		return m.theme.Watch(pane)
	}
	return nil
}

func waitDone(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ctxDoneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Store == nil {
		return errors.New("ui requires a store")
	}

	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		slog.Error("ui exited with error", "error", err)
	}
	return err
}
