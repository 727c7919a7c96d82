package core

import (
	"io"

	"github.com/sarchlab/cellar/terminal"
)

// Builder can create new cores.
type Builder struct {
	term        terminal.Terminal
	out         io.Writer
	diag        io.Writer
	eof         EOFPolicy
	dumpColumns int
}

// NewBuilder returns a builder with output and diagnostics discarded, no
// input available, and eight cells per tape dump row.
func NewBuilder() Builder {
	return Builder{
		out:         io.Discard,
		diag:        io.Discard,
		dumpColumns: 8,
	}
}

// WithTerminal sets the source of Input keystrokes.
func (b Builder) WithTerminal(term terminal.Terminal) Builder {
	b.term = term
	return b
}

// WithOutput sets where Output instructions write.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

// WithDiagnostics sets where DebugDump instructions write.
func (b Builder) WithDiagnostics(diag io.Writer) Builder {
	b.diag = diag
	return b
}

// WithEOF sets what Input stores once the key source is exhausted.
func (b Builder) WithEOF(policy EOFPolicy) Builder {
	b.eof = policy
	return b
}

// WithDumpColumns sets how many cells a tape dump shows per row.
func (b Builder) WithDumpColumns(columns int) Builder {
	if columns < 1 {
		panic("Need at least 1 dump column")
	}
	b.dumpColumns = columns
	return b
}

// Build creates a core with a fresh tape.
func (b Builder) Build(name string) *Core {
	c := &Core{name: name}

	term := b.term
	if term == nil {
		term = terminal.NewScript()
	}

	c.emu = instEmulator{
		term:        term,
		out:         b.out,
		diag:        b.diag,
		eof:         b.eof,
		dumpColumns: b.dumpColumns,
	}
	c.state = coreState{
		Tape: NewTape(),
	}

	return c
}
