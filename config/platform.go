package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/cellar/terminal"
)

// Platform bundles the host streams a run talks to.
type Platform struct {
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer

	// OpenTerminal picks the key source; nil means terminal.Open.
	OpenTerminal func(stdin *os.File, sourceFromStdin bool) terminal.Terminal
}

// HostPlatform returns the process's standard streams.
func HostPlatform() Platform {
	return Platform{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Terminal opens the key source for a run on this platform.
func (p Platform) Terminal(sourceFromStdin bool) terminal.Terminal {
	open := p.OpenTerminal
	if open == nil {
		open = terminal.Open
	}

	return open(p.Stdin, sourceFromStdin)
}

// NewLogger builds the logger described by c. With a log file the logger
// writes JSON to it and the returned closer closes the file; otherwise it
// writes text to the platform's stderr.
func (c Config) NewLogger(p Platform) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}

	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(p.Stderr, opts)), func() error { return nil }, nil
	}

	f, err := os.Create(c.LogFile)
	if err != nil {
		return nil, nil, err
	}

	return slog.New(slog.NewJSONHandler(f, opts)), f.Close, nil
}
