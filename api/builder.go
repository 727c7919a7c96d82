package api

import (
	"io"

	"github.com/sarchlab/cellar/core"
	"github.com/sarchlab/cellar/terminal"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	term        terminal.Terminal
	out         io.Writer
	diag        io.Writer
	comments    bool
	eof         core.EOFPolicy
	dumpColumns int
}

// WithTerminal sets the key source Input reads from.
func (b DriverBuilder) WithTerminal(term terminal.Terminal) DriverBuilder {
	b.term = term
	return b
}

// WithOutput sets where program output goes.
func (b DriverBuilder) WithOutput(out io.Writer) DriverBuilder {
	b.out = out
	return b
}

// WithDiagnostics sets where tape dumps go.
func (b DriverBuilder) WithDiagnostics(diag io.Writer) DriverBuilder {
	b.diag = diag
	return b
}

// WithComments enables '#' line comments in loaded source.
func (b DriverBuilder) WithComments(comments bool) DriverBuilder {
	b.comments = comments
	return b
}

// WithEOF sets the end-of-input policy.
func (b DriverBuilder) WithEOF(policy core.EOFPolicy) DriverBuilder {
	b.eof = policy
	return b
}

// WithDumpColumns sets how many cells a tape dump shows per row. Zero keeps
// the default; Build panics on a negative value.
func (b DriverBuilder) WithDumpColumns(columns int) DriverBuilder {
	b.dumpColumns = columns
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	cb := core.NewBuilder().WithEOF(b.eof)

	if b.term != nil {
		cb = cb.WithTerminal(b.term)
	}

	if b.out != nil {
		cb = cb.WithOutput(b.out)
	}

	if b.diag != nil {
		cb = cb.WithDiagnostics(b.diag)
	}

	if b.dumpColumns != 0 {
		cb = cb.WithDumpColumns(b.dumpColumns)
	}

	return &driverImpl{
		name:     name,
		comments: b.comments,
		core:     cb.Build(name),
	}
}
