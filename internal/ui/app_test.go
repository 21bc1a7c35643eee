package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/shelf/internal/bind"
	"github.com/five82/shelf/internal/board"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{Store: bind.Create(board.New)})
	t.Cleanup(m.Close)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(runes(k))
		m = next.(Model)
	}
	return m
}

func TestUpdate_KeysDriveActions(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "+", "+", "-")
	assert.Equal(t, 1, m.store.GetState().Count)

	m = press(t, m, "T")
	assert.Equal(t, "Kanagawa", m.store.GetState().Theme)

	m = press(t, m, "r")
	assert.Zero(t, m.store.GetState().Count)
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_ChangedMsgCountsPerPane(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(bind.ChangedMsg{Key: paneClock})
	m = next.(Model)

	assert.NotNil(t, cmd, "the pane's watch is re-issued")
	assert.Equal(t, map[string]int{paneClock: 1}, m.changes)
	assert.Equal(t, paneClock, m.last)
}

func TestWatch_OnlyChangedPaneIsWoken(t *testing.T) {
	m := newTestModel(t)

	clockMsgs := make(chan tea.Msg, 1)
	go func() { clockMsgs <- m.watch(paneClock)() }()
	countMsgs := make(chan tea.Msg, 1)
	go func() { countMsgs <- m.watch(paneCount)() }()

	m.store.GetState().Tick(time.Now())

	select {
	case msg := <-clockMsgs:
		assert.Equal(t, bind.ChangedMsg{Key: paneClock}, msg)
	case <-time.After(time.Second):
		t.Fatal("clock pane was not woken by a tick")
	}

	select {
	case msg := <-countMsgs:
		t.Fatalf("count pane woken by a tick: %#v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUpdate_ContextDoneQuits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.IsType(t, ctxDoneMsg{}, waitDone(ctx)())

	m := newTestModel(t)
	_, cmd := m.Update(ctxDoneMsg{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_RendersPanes(t *testing.T) {
	m := newTestModel(t)
	m.store.GetState().Inc()
	m.store.GetState().Inc()

	view := m.View()

	for _, want := range []string{"shelf", "Counter", "Clock", "Theme", "Nightfox", "2", "waiting for first tick"} {
		assert.Contains(t, view, want)
	}
}

func TestPanes_ShareOneHeight(t *testing.T) {
	m := newTestModel(t)
	styles := GetTheme(board.DefaultTheme).Styles()

	for _, ticked := range []bool{false, true} {
		if ticked {
			m.store.GetState().Tick(time.Now())
		}
		b := m.store.GetState()

		want := lipgloss.Height(m.renderCount(b, styles))
		assert.Equal(t, want, lipgloss.Height(m.renderClock(b, styles)), "clock pane, ticked=%v", ticked)
		assert.Equal(t, want, lipgloss.Height(m.renderTheme(b, styles)), "theme pane, ticked=%v", ticked)
	}
}

func TestRun_RequiresStore(t *testing.T) {
	assert.Error(t, Run(Options{}))
}
