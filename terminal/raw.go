package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

const (
	byteInterrupt = 0x03
	byteEOT       = 0x04
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// Raw reads keystrokes from a terminal device in uncooked mode.
type Raw struct {
	file   *os.File
	owned  bool
	reader *bufio.Reader

	mu    sync.Mutex
	saved *term.State
}

// NewRaw wraps a terminal file. The file is not closed by Close.
func NewRaw(file *os.File) *Raw {
	return &Raw{
		file:   file,
		reader: bufio.NewReader(file),
	}
}

func newOwnedRaw(file *os.File) *Raw {
	r := NewRaw(file)
	r.owned = true
	return r
}

// EnterUncooked puts the terminal into raw mode and remembers the previous
// state. Entering twice keeps the first saved state.
func (r *Raw) EnterUncooked() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saved != nil {
		return nil
	}

	state, err := term.MakeRaw(int(r.file.Fd()))
	if err != nil {
		return err
	}
	r.saved = state

	return nil
}

// RestoreCooked puts back the state saved by EnterUncooked.
func (r *Raw) RestoreCooked() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saved == nil {
		return nil
	}

	err := term.Restore(int(r.file.Fd()), r.saved)
	r.saved = nil

	return err
}

// NextKey blocks for the next keystroke.
func (r *Raw) NextKey() (KeyEvent, error) {
	return readRawKey(r.reader)
}

// Close restores the terminal and closes the device if Raw opened it.
func (r *Raw) Close() error {
	err := r.RestoreCooked()
	if r.owned {
		err = errors.Join(err, r.file.Close())
	}

	return err
}

// readRawKey decodes one keystroke from uncooked terminal bytes. Each byte
// of a multi-byte character arrives as its own key.
func readRawKey(reader *bufio.Reader) (KeyEvent, error) {
	b, err := reader.ReadByte()
	if errors.Is(err, io.EOF) {
		return EOF, nil
	}
	if err != nil {
		return KeyEvent{}, err
	}

	switch {
	case b == byteInterrupt:
		return Interrupt, nil
	case b == '\r' || b == '\n':
		return Enter, nil
	case b == byteEOT:
		return EOF, nil
	case b == byteEscape:
		skipEscapeSequence(reader)
		return Ignored, nil
	case b < 0x20 || b == byteDelete:
		return Ignored, nil
	}

	return Byte(b), nil
}

// skipEscapeSequence drops the rest of a CSI or SS3 sequence (arrow keys,
// function keys) that arrived together with its escape byte.
func skipEscapeSequence(reader *bufio.Reader) {
	if reader.Buffered() == 0 {
		return
	}

	intro, err := reader.ReadByte()
	if err != nil {
		return
	}
	if intro != '[' && intro != 'O' {
		_ = reader.UnreadByte()
		return
	}

	for reader.Buffered() > 0 {
		b, err := reader.ReadByte()
		if err != nil || (b >= 0x40 && b <= 0x7e) {
			return
		}
	}
}
