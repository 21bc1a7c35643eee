package bind

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg is delivered to a Bubble Tea program when a watched slice
// changed. Key identifies the consumer that issued the Watch.
type ChangedMsg struct {
	Key string
}

// Watch returns a command that waits for the next change of e and reports it
// as a ChangedMsg. It yields a nil message once e is closed. The model should
// read the new value and issue Watch again after handling the message.
func (e *External[T]) Watch(key string) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-e.changed:
			return ChangedMsg{Key: key}
		case <-e.done:
			return nil
		}
	}
}
