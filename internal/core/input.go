package core

// Key identifies a physical keyboard key. Letter keys carry their
// lower-case rune so platforms can translate without a lookup table.
type Key rune

const (
	KeyUnknown Key = 0
	KeyEscape  Key = 0x1b
	KeyH       Key = 'h'
	KeyJ       Key = 'j'
	KeyK       Key = 'k'
	KeyL       Key = 'l'
)

// KeyFromRune converts a typed rune into a Key. ASCII letters are folded to
// lower case, since K and Shift+K are the same physical key.
func KeyFromRune(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r >= 'a' && r <= 'z' {
		return Key(r)
	}
	return KeyUnknown
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch {
	case k == KeyUnknown:
		return "unknown"
	case k == KeyEscape:
		return "esc"
	case k >= 'a' && k <= 'z':
		return string(rune(k))
	default:
		return "unknown"
	}
}

// ButtonState distinguishes presses from releases.
type ButtonState int

const (
	Press ButtonState = iota
	Release
)

func (s ButtonState) String() string {
	if s == Release {
		return "release"
	}
	return "press"
}

// ButtonArgs describes one keyboard button event.
type ButtonArgs struct {
	Key   Key
	State ButtonState
}

// RenderArgs describes one render request.
type RenderArgs struct {
	Viewport Viewport
}

// Event is one item yielded by a platform's event source.
// Any combination of the fields may be set; the zero Event carries nothing.
type Event struct {
	Render *RenderArgs // Non-nil for a render request
	Update bool        // True for a fixed-rate update tick
	Button *ButtonArgs // Non-nil for a key press or release
}

// RenderEvent returns an Event carrying a render request for vp.
func RenderEvent(vp Viewport) Event {
	return Event{Render: &RenderArgs{Viewport: vp}}
}

// UpdateEvent returns an Event carrying one update tick.
func UpdateEvent() Event {
	return Event{Update: true}
}

// ButtonEvent returns an Event carrying a key press or release.
func ButtonEvent(k Key, state ButtonState) Event {
	return Event{Button: &ButtonArgs{Key: k, State: state}}
}
