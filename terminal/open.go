package terminal

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const ttyDevice = "/dev/tty"

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Open picks the key source for a run. An interactive stdin is used in raw
// mode. When the program text itself was read from stdin, keystrokes come
// from the controlling terminal instead, and if there is none the run gets
// an exhausted stream. Otherwise piped stdin is read as a stream.
//
// The returned Terminal may implement io.Closer.
func Open(stdin *os.File, sourceFromStdin bool) Terminal {
	if isTerminal(stdin) {
		return NewRaw(stdin)
	}

	if !sourceFromStdin {
		return NewStream(stdin)
	}

	tty, err := os.Open(ttyDevice)
	if err != nil {
		slog.Debug("no controlling terminal", "Device", ttyDevice, "Error", err)
		return NewStream(strings.NewReader(""))
	}

	if !isTerminal(tty) {
		_ = tty.Close()
		return NewStream(strings.NewReader(""))
	}

	return newOwnedRaw(tty)
}
