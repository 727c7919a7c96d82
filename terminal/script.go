package terminal

// Script replays a fixed list of keystrokes and then reports EOF forever. It
// counts mode switches so callers can check the acquire/release discipline.
type Script struct {
	events []KeyEvent
	next   int

	uncooked bool
	Entered  int
	Restored int
}

// NewScript creates a scripted key source.
func NewScript(events ...KeyEvent) *Script {
	return &Script{events: events}
}

// EnterUncooked records the switch.
func (s *Script) EnterUncooked() error {
	s.uncooked = true
	s.Entered++
	return nil
}

// RestoreCooked records the switch. Restoring a cooked script is not
// counted.
func (s *Script) RestoreCooked() error {
	if !s.uncooked {
		return nil
	}
	s.uncooked = false
	s.Restored++
	return nil
}

// Uncooked reports whether the script is currently in uncooked mode.
func (s *Script) Uncooked() bool {
	return s.uncooked
}

// Remaining returns how many scripted events have not been read yet.
func (s *Script) Remaining() int {
	return len(s.events) - s.next
}

// NextKey returns the next scripted event.
func (s *Script) NextKey() (KeyEvent, error) {
	if s.next >= len(s.events) {
		return EOF, nil
	}

	e := s.events[s.next]
	s.next++

	return e, nil
}
