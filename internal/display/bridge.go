package display

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/thermo/internal/feed"
)

// Sender is the part of *tea.Program the bridge needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge implements feed.Sink and forwards readings to the Bubble Tea
// program via Send. This is goroutine-safe.
type Bridge struct {
	program Sender
}

// NewBridge creates a bridge that forwards to program.
func NewBridge(program Sender) *Bridge {
	return &Bridge{program: program}
}

// Reading forwards a reading to the TUI.
func (b *Bridge) Reading(r feed.Reading) {
	b.program.Send(ReadingMsg{Reading: r})
}

// Done signals that the feed has ended.
func (b *Bridge) Done(err error) {
	b.program.Send(FeedDoneMsg{Err: err})
}
