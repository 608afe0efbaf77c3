package focus

// Target identifies the pane that receives pane-specific bindings and
// visual emphasis.
type Target int

const (
	Messages Target = iota
	Input
	Channels
)

// Default is the pane focused at startup.
const Default = Messages

// Order is the ring walked by focus cycling. Next and Prev are computed by
// index arithmetic over it, so cycling len(Order) times is the identity.
var Order = []Target{Messages, Input, Channels}

// FocusableComponent is implemented by panes that track focus themselves,
// like the text input.
type FocusableComponent interface {
	Focus()
	Blur()
	IsFocused() bool
}

func indexOf(t Target) (int, bool) {
	for i, candidate := range Order {
		if candidate == t {
			return i, true
		}
	}
	return 0, false
}

// Next returns the target after t in the ring. Unknown targets fall back to
// Default.
func Next(t Target) Target {
	i, ok := indexOf(t)
	if !ok {
		return Default
	}
	return Order[(i+1)%len(Order)]
}

// Prev returns the target before t in the ring. Unknown targets fall back to
// Default.
func Prev(t Target) Target {
	i, ok := indexOf(t)
	if !ok {
		return Default
	}
	return Order[(i+len(Order)-1)%len(Order)]
}

func (t Target) String() string {
	switch t {
	case Messages:
		return "messages"
	case Input:
		return "input"
	case Channels:
		return "channels"
	default:
		return "unknown"
	}
}

// Sync focuses c when active is true and blurs it otherwise, skipping the
// call when c is already in the wanted state.
func Sync(c FocusableComponent, active bool) {
	if c == nil || c.IsFocused() == active {
		return
	}
	if active {
		c.Focus()
		return
	}
	c.Blur()
}
