package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/shelf/internal/state"
)

func newStore() *state.Store[Board] {
	return state.New(New)
}

func TestActions_Counter(t *testing.T) {
	s := newStore()

	s.GetState().Inc()
	s.GetState().Inc()
	s.GetState().Dec()
	assert.Equal(t, 1, s.GetState().Count)

	require.NoError(t, s.SetState(state.Fields[Board]{"step": 5}))
	s.GetState().Inc()
	assert.Equal(t, 6, s.GetState().Count, "step 5")

	s.GetState().Reset()
	assert.Zero(t, s.GetState().Count)
}

func TestActions_NonPositiveStepCountsByOne(t *testing.T) {
	s := newStore()
	require.NoError(t, s.SetState(state.Fields[Board]{"step": 0}))

	s.GetState().Inc()

	assert.Equal(t, 1, s.GetState().Count)
}

func TestActions_NoopsDoNotNotify(t *testing.T) {
	s := newStore()
	calls := 0
	s.Subscribe(func() { calls++ })

	s.GetState().Reset()
	s.GetState().SetTheme(DefaultTheme)
	s.GetState().SetTheme("   ")

	assert.Zero(t, calls)
}

func TestActions_TickAndTheme(t *testing.T) {
	s := newStore()
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	s.GetState().Tick(at)
	s.GetState().SetTheme(" Slate ")

	b := s.GetState()
	assert.Equal(t, Clock{Ticks: 1, LastTick: at}, ClockOf(b))
	assert.Equal(t, "Slate", Theme(b))
}

func TestActions_WorkInReplaceMode(t *testing.T) {
	s := state.New(New, state.WithReplace())

	s.GetState().Inc()
	s.GetState().SetTheme("Slate")

	b := s.GetState()
	assert.Equal(t, 1, b.Count)
	assert.Equal(t, 1, b.Step)
	assert.Equal(t, "Slate", b.Theme)
	assert.NotNil(t, b.Inc)
}

func TestActionsSurviveMerges(t *testing.T) {
	s := newStore()
	inc := s.GetState().Inc

	s.GetState().Inc()

	assert.True(t, state.Is(inc, s.GetState().Inc), "Inc changed identity after an update")
}

func TestClockSelectorIgnoresCounter(t *testing.T) {
	s := newStore()
	before := ClockOf(s.GetState())

	s.GetState().Inc()

	assert.True(t, state.Is(before, ClockOf(s.GetState())), "ClockOf changed after a counter update")
	assert.Equal(t, 1, Count(s.GetState()))
}
