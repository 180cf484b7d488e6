package display

import (
	"time"

	"github.com/rileyhilliard/thermo/internal/feed"
)

// ReadingMsg carries one parsed reading from the feed.
type ReadingMsg struct {
	Reading feed.Reading
}

// FeedDoneMsg is sent once when the feed ends. Err is nil on EOF.
type FeedDoneMsg struct {
	Err error
}

// frameMsg advances the fill animation by one frame.
type frameMsg time.Time
