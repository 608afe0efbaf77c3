package layout

import "github.com/isaacphi/tirc/internal/config"

const (
	// DefaultChannelsPercent is the width share of the channel list.
	DefaultChannelsPercent = 25
	// DefaultMessagesPercent is the height share of the message view within
	// the right column. The input pane gets the rest.
	DefaultMessagesPercent = 95
	// DefaultMinInputHeight keeps a bordered one-line input visible. Below
	// about 60 rows it overrides the 95/5 split, so snapshots that expect the
	// exact percentages must set MinInputHeight to 0.
	DefaultMinInputHeight = 3
)

// Rect is a cell rectangle on the terminal.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether nothing can be drawn in r.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Ratios controls how the screen is split.
type Ratios struct {
	ChannelsPercent int
	MessagesPercent int
	MinInputHeight  int
}

// DefaultRatios returns the 25/75 by 95/5 split.
func DefaultRatios() Ratios {
	return Ratios{
		ChannelsPercent: DefaultChannelsPercent,
		MessagesPercent: DefaultMessagesPercent,
		MinInputHeight:  DefaultMinInputHeight,
	}
}

// FromConfig converts the layout config section.
func FromConfig(cfg config.Layout) Ratios {
	return Ratios{
		ChannelsPercent: cfg.ChannelsPercent,
		MessagesPercent: cfg.MessagesPercent,
		MinInputHeight:  cfg.MinInputHeight,
	}
}

// Panes holds the rectangle of every pane.
type Panes struct {
	Channels Rect
	Messages Rect
	Input    Rect
}

// Compute splits a width x height screen. The channel list takes the left
// column, the message view and the input pane stack in the right one.
// Out-of-range percentages fall back to the defaults. When the input share is
// shorter than MinInputHeight rows the input grows to that height and the
// message view shrinks by the same amount.
func Compute(width, height int, r Ratios) Panes {
	width = max(width, 0)
	height = max(height, 0)

	cp := r.ChannelsPercent
	if cp <= 0 || cp >= 100 {
		cp = DefaultChannelsPercent
	}
	mp := r.MessagesPercent
	if mp <= 0 || mp >= 100 {
		mp = DefaultMessagesPercent
	}

	leftW := width * cp / 100
	rightW := width - leftW

	msgH := height * mp / 100
	inH := height - msgH
	if inH < r.MinInputHeight {
		inH = min(r.MinInputHeight, height)
		msgH = height - inH
	}

	return Panes{
		Channels: Rect{X: 0, Y: 0, Width: leftW, Height: height},
		Messages: Rect{X: leftW, Y: 0, Width: rightW, Height: msgH},
		Input:    Rect{X: leftW, Y: msgH, Width: rightW, Height: inH},
	}
}
