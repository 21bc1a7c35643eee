package board

import (
	"strings"
	"time"

	"github.com/five82/shelf/internal/state"
)

// DefaultTheme is the theme a new board starts with.
const DefaultTheme = "Nightfox"

// Board is the state record. Treat values obtained from a store as read-only;
// change them through the actions.
type Board struct {
	Count    int       `state:"count"`
	Step     int       `state:"step"`
	Ticks    int       `state:"ticks"`
	LastTick time.Time `state:"last_tick"`
	Theme    string    `state:"theme"`

	Inc      func()
	Dec      func()
	Reset    func()
	Tick     func(at time.Time)
	SetTheme func(name string)
}

// Clock is the part of the board the ticker owns.
type Clock struct {
	Ticks    int
	LastTick time.Time
}

// New is the board's initializer. Actions build whole records, so they
// behave the same whether the store merges or replaces.
func New(set state.SetFunc[Board]) *Board {
	modify := func(fn func(cur, next *Board) bool) {
		_ = set(state.Func[Board](func(cur *Board) state.Update[Board] {
			next := *cur
			if !fn(cur, &next) {
				return nil
			}
			return state.Value(&next)
		}))
	}

	return &Board{
		Step:  1,
		Theme: DefaultTheme,

		Inc: func() {
			modify(func(cur, next *Board) bool {
				next.Count = cur.Count + step(cur)
				return true
			})
		},
		Dec: func() {
			modify(func(cur, next *Board) bool {
				next.Count = cur.Count - step(cur)
				return true
			})
		},
		Reset: func() {
			modify(func(cur, next *Board) bool {
				next.Count = 0
				return cur.Count != 0
			})
		},
		Tick: func(at time.Time) {
			modify(func(cur, next *Board) bool {
				next.Ticks = cur.Ticks + 1
				next.LastTick = at
				return true
			})
		},
		SetTheme: func(name string) {
			name = strings.TrimSpace(name)
			modify(func(cur, next *Board) bool {
				next.Theme = name
				return name != "" && name != cur.Theme
			})
		},
	}
}

// Selectors used by the panes.

func Count(b *Board) int { return b.Count }

func ClockOf(b *Board) Clock { return Clock{Ticks: b.Ticks, LastTick: b.LastTick} }

func Theme(b *Board) string { return b.Theme }

func step(b *Board) int {
	if b.Step <= 0 {
		return 1
	}
	return b.Step
}
