// Package event defines the decoded input-event values exchanged with the
// host input-injection subsystem, and a screened wire codec for them so the
// values never cross the wire as plain text. Injection itself happens
// elsewhere; this package stops at the decoded values.
package event

// PointerFlags marks which pointer actions an event carries. Flags combine:
// a drag step is PointerMove|PointerButtonDown territory expressed across
// consecutive events.
type PointerFlags uint16

const (
	PointerMove PointerFlags = 1 << iota
	PointerButtonDown
	PointerButtonUp
	PointerWheel
)

// Buttons is the bitmask naming which pointer buttons a down/up flag applies
// to.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonMiddle
)

// PointerEvent is a decoded network pointer event.
type PointerEvent struct {
	X, Y    int32
	Flags   PointerFlags
	Buttons Buttons
	// Wheel is the signed scroll delta, meaningful when PointerWheel is set.
	Wheel int16
}

// KeyFlags marks the direction and extended-code bit of a key event.
type KeyFlags uint8

const (
	KeyDown KeyFlags = 1 << iota
	KeyUp
	KeyExtended
)

// KeyEvent is a decoded network keyboard event.
type KeyEvent struct {
	VirtualKey uint16
	ScanCode   uint16
	Flags      KeyFlags
}

// Pressed reports whether the event is a key press. An event carrying
// neither KeyDown nor KeyUp is treated as a press, matching what senders
// that omit direction flags expect.
func (e KeyEvent) Pressed() bool {
	if e.Flags&KeyDown != 0 {
		return true
	}
	return e.Flags&KeyUp == 0
}

// Released reports whether the event is a key release.
func (e KeyEvent) Released() bool {
	return e.Flags&KeyUp != 0
}

// Extended reports whether the scan code needs the extended-key prefix.
func (e KeyEvent) Extended() bool {
	return e.Flags&KeyExtended != 0
}
