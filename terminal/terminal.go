// Package terminal provides the keystroke sources the evaluator reads input
// from, together with the uncooked/cooked mode switch of the host terminal.
package terminal

import "fmt"

// KeyKind classifies a keystroke event.
type KeyKind int

const (
	// KeyChar is a plain character.
	KeyChar KeyKind = iota
	// KeyEnter is the Enter/Return key.
	KeyEnter
	// KeyInterrupt is the interrupt keystroke (Ctrl-C).
	KeyInterrupt
	// KeyEOF means the source has no more keystrokes to give.
	KeyEOF
	// KeyIgnored is a keystroke that carries no character, such as an arrow
	// key or a bare control byte. Readers keep waiting after it.
	KeyIgnored
)

func (k KeyKind) String() string {
	switch k {
	case KeyChar:
		return "Char"
	case KeyEnter:
		return "Enter"
	case KeyInterrupt:
		return "Interrupt"
	case KeyEOF:
		return "EOF"
	case KeyIgnored:
		return "Ignored"
	}
	return fmt.Sprintf("KeyKind(%d)", int(k))
}

// KeyEvent is one keystroke. Char is only meaningful for KeyChar. Raw and
// Stream sources deliver one byte per event, so their Char is below 256.
type KeyEvent struct {
	Kind KeyKind
	Char rune
}

// Char makes a plain character event.
func Char(ch rune) KeyEvent {
	return KeyEvent{Kind: KeyChar, Char: ch}
}

// Byte makes a character event carrying one raw input byte.
func Byte(b byte) KeyEvent {
	return KeyEvent{Kind: KeyChar, Char: rune(b)}
}

// Event constructors for the character-less kinds.
var (
	Enter     = KeyEvent{Kind: KeyEnter}
	Interrupt = KeyEvent{Kind: KeyInterrupt}
	EOF       = KeyEvent{Kind: KeyEOF}
	Ignored   = KeyEvent{Kind: KeyIgnored}
)

// Keys turns a string into one event per rune, with '\n' becoming Enter.
func Keys(s string) []KeyEvent {
	events := make([]KeyEvent, 0, len(s))
	for _, ch := range s {
		if ch == '\n' {
			events = append(events, Enter)
			continue
		}
		events = append(events, Char(ch))
	}

	return events
}

// Terminal is the host capability the evaluator needs for input.
type Terminal interface {
	// EnterUncooked switches the terminal to deliver keystrokes immediately
	// and without echo.
	EnterUncooked() error

	// RestoreCooked switches the terminal back to line-buffered, echoing
	// mode. Calling it when the terminal is already cooked does nothing.
	RestoreCooked() error

	// NextKey blocks until one keystroke is available.
	NextKey() (KeyEvent, error)
}
