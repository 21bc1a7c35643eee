package ui

import (
	"fmt"
	"strings"

	"github.com/five82/shelf/internal/board"
)

// Pane size inside the border. The width includes the horizontal padding;
// the height fits a title, a two-line body and the footer.
const (
	paneWidth  = 28
	paneHeight = 4
)

func (m Model) renderHeader(b *board.Board, styles Styles) string {
	parts := []string{
		styles.Logo.Render("shelf"),
		styles.MutedText.Render(fmt.Sprintf("step %d", b.Step)),
		styles.FaintText.Render(fmt.Sprintf("%d listeners", m.store.Listeners())),
	}
	return styles.Header.Render(strings.Join(parts, "  "))
}

func (m Model) renderCount(b *board.Board, styles Styles) string {
	n := m.count.At(b)
	value := styles.AccentText.Render(fmt.Sprintf("%d", n))
	if n < 0 {
		value = styles.DangerText.Render(fmt.Sprintf("%d", n))
	}
	return m.pane(paneCount, "Counter", value, styles)
}

func (m Model) renderClock(b *board.Board, styles Styles) string {
	clock := m.clock.At(b)
	value := styles.Text.Render("waiting for first tick")
	if clock.Ticks > 0 {
		value = styles.SuccessText.Render(fmt.Sprintf("%d ticks", clock.Ticks)) +
			"\n" + styles.MutedText.Render(clock.LastTick.Format("15:04:05"))
	}
	return m.pane(paneClock, "Clock", value, styles)
}

func (m Model) renderTheme(b *board.Board, styles Styles) string {
	return m.pane(paneTheme, "Theme", styles.Text.Render(m.theme.At(b)), styles)
}

// pane frames one consumer and shows how many changes it has received.
func (m Model) pane(key, title, body string, styles Styles) string {
	frame := styles.Pane
	if m.last == key {
		frame = styles.FlashPane
	}
	footer := styles.FaintText.Render(fmt.Sprintf("%d updates", m.changes[key]))
	return frame.Render(strings.Join([]string{styles.MutedText.Render(title), body, footer}, "\n"))
}
