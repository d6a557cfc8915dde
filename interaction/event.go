package interaction

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// EventKind distinguishes pointer events.
type EventKind uint8

const (
	EventMove EventKind = iota
	EventPress
	EventRelease
)

var eventKindNames = map[EventKind]string{
	EventMove:    "move",
	EventPress:   "press",
	EventRelease: "release",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// ParseEventKind maps "move", "press" and "release" to their kinds.
func ParseEventKind(s string) (EventKind, error) {
	for k, name := range eventKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown pointer event %q", s)
}

// Event is a pointer event in window pixel coordinates (origin top-left).
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   float32
}

// Move returns a pointer move event.
func Move(x, y float32) Event {
	return Event{Kind: EventMove, X: x, Y: y}
}

// Press returns a left-button press event.
func Press(x, y float32) Event {
	return Event{Kind: EventPress, Button: ButtonLeft, X: x, Y: y}
}

// Release returns a left-button release event.
func Release(x, y float32) Event {
	return Event{Kind: EventRelease, Button: ButtonLeft, X: x, Y: y}
}

// Viewport is the window size used to normalise pixel coordinates.
type Viewport struct {
	Width, Height float32
}

// Normalize converts a pixel position into table coordinates: x grows to
// the right over [0, 2] and y grows upward over [0, 2].
func (v Viewport) Normalize(px, py float32) mgl32.Vec2 {
	return mgl32.Vec2{
		2 * px / v.Width,
		2 * (1 - py/v.Height),
	}
}

// ButtonSample is the left-button and cursor state polled once per frame.
type ButtonSample struct {
	X, Y     float32
	Moved    bool
	Pressed  bool // went down since the last poll
	Released bool // went up since the last poll
	Down     bool // held at poll time
}

// Events orders one frame's polled state into pointer events. The move
// comes first so a press lands where the cursor is. When the button both
// went down and came up within the frame, the current state decides which
// happened last: held means release then press, otherwise press then
// release.
func (s ButtonSample) Events() []Event {
	var out []Event
	if s.Moved {
		out = append(out, Move(s.X, s.Y))
	}
	switch {
	case s.Pressed && s.Released && s.Down:
		out = append(out, Release(s.X, s.Y), Press(s.X, s.Y))
	default:
		if s.Pressed {
			out = append(out, Press(s.X, s.Y))
		}
		if s.Released {
			out = append(out, Release(s.X, s.Y))
		}
	}
	return out
}
