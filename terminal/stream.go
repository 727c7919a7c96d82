package terminal

import (
	"bufio"
	"errors"
	"io"
)

// Stream reads keystrokes from a non-interactive source such as a pipe. It
// has no modes to switch.
type Stream struct {
	reader *bufio.Reader
}

// NewStream creates a stream key source.
func NewStream(r io.Reader) *Stream {
	return &Stream{reader: bufio.NewReader(r)}
}

// EnterUncooked does nothing.
func (s *Stream) EnterUncooked() error { return nil }

// RestoreCooked does nothing.
func (s *Stream) RestoreCooked() error { return nil }

// NextKey returns the next byte of the stream. Carriage returns are skipped
// so CRLF input behaves like LF input.
func (s *Stream) NextKey() (KeyEvent, error) {
	b, err := s.reader.ReadByte()
	if errors.Is(err, io.EOF) {
		return EOF, nil
	}
	if err != nil {
		return KeyEvent{}, err
	}

	switch b {
	case '\n':
		return Enter, nil
	case '\r':
		return Ignored, nil
	}

	return Byte(b), nil
}
