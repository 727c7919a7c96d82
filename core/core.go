// Package core runs instruction trees against a tape.
package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/cellar/program"
)

// Core executes programs. The tape persists across calls to Run so a core
// can run several programs against the same memory.
type Core struct {
	name  string
	state coreState
	emu   instEmulator
}

// Name returns the name given to the builder.
func (c *Core) Name() string {
	return c.name
}

// Tape returns the core's tape.
func (c *Core) Tape() *Tape {
	return c.state.Tape
}

// Steps returns how many instruction nodes have been executed so far.
func (c *Core) Steps() uint64 {
	return c.state.Steps
}

// Run executes the program. The terminal is put into uncooked mode for the
// whole run and restored before Run returns, whatever the outcome.
//
// A Terminate instruction makes Run return an *ExitSignal, an interrupt
// keystroke an *InterruptSignal. Any other error is an I/O failure.
func (c *Core) Run(prog program.Program) (err error) {
	if err := c.emu.term.EnterUncooked(); err != nil {
		return fmt.Errorf("entering uncooked input mode: %w", err)
	}

	defer func() {
		if restoreErr := c.emu.term.RestoreCooked(); restoreErr != nil {
			err = errors.Join(err,
				fmt.Errorf("restoring cooked input mode: %w", restoreErr))
		}
	}()

	Trace("Run", "Core", c.name, "Insts", len(prog.Insts))

	err = c.emu.RunInsts(prog.Insts, &c.state)

	LogState(c.name, &c.state)

	return err
}
