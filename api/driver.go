// Package api defines the driver API for loading, running, and translating
// tape programs.
package api

import (
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/cellar/codegen"
	"github.com/sarchlab/cellar/core"
	"github.com/sarchlab/cellar/program"
	"github.com/sarchlab/cellar/verify"
)

// ErrNoProgram is returned when Run or Emit is called before a successful
// Load.
var ErrNoProgram = errors.New("no program loaded")

// Driver provides the interface to control an interpreter run.
type Driver interface {
	// Load scans and builds the source. A structurally invalid source is
	// rejected with a *SourceError and the previously loaded program, if
	// any, is kept.
	Load(source string) error

	// Program returns the loaded instruction tree.
	Program() program.Program

	// Run executes the loaded program. Terminate and interrupt are reported
	// through the Outcome, not as errors.
	Run() (Outcome, error)

	// Emit writes the loaded program as C source.
	Emit(w io.Writer) error

	// Tape returns the tape the driver's runs share.
	Tape() *core.Tape
}

// SourceError rejects a program whose loop brackets do not balance. Issues
// lists every offending bracket; the first one is the reason for the
// rejection.
type SourceError struct {
	Issues []verify.Issue
}

func (e *SourceError) Error() string {
	first := e.Issues[0]
	return fmt.Sprintf("%s at line %d, column %d",
		first.Message, first.Pos.Line, first.Pos.Column)
}

func (e *SourceError) Unwrap() error {
	return e.Issues[0].Err()
}

type driverImpl struct {
	name     string
	comments bool
	core     *core.Core

	loaded bool
	prog   program.Program
}

func (d *driverImpl) Load(source string) error {
	prog, err := program.Parse(source, d.comments)
	if err != nil {
		issues := verify.RunLint(source, d.comments)
		if len(issues) == 0 {
			return err
		}
		return &SourceError{Issues: issues}
	}

	leaves, loops := prog.Count()
	core.Trace("Load", "Driver", d.name,
		"Leaves", leaves, "Loops", loops, "Depth", prog.Depth())

	d.prog = prog
	d.loaded = true

	return nil
}

func (d *driverImpl) Program() program.Program {
	return d.prog
}

func (d *driverImpl) Run() (Outcome, error) {
	if !d.loaded {
		return Outcome{}, ErrNoProgram
	}

	return classify(d.core.Run(d.prog))
}

// classify separates the run signals from real failures. A signal joined
// with a restore failure yields both the outcome and the error.
func classify(err error) (Outcome, error) {
	var (
		exit      *core.ExitSignal
		interrupt *core.InterruptSignal
		out       Outcome
	)

	switch {
	case err == nil:
		return Outcome{Kind: Completed}, nil
	case errors.As(err, &exit):
		out = Outcome{Kind: Terminated, Code: exit.Code}
		if err == error(exit) {
			return out, nil
		}
	case errors.As(err, &interrupt):
		out = Outcome{Kind: Interrupted, Reason: interrupt.Reason}
		if err == error(interrupt) {
			return out, nil
		}
	default:
		return Outcome{}, err
	}

	return out, err
}

func (d *driverImpl) Emit(w io.Writer) error {
	if !d.loaded {
		return ErrNoProgram
	}

	_, err := io.WriteString(w, codegen.Emit(d.prog))

	return err
}

func (d *driverImpl) Tape() *core.Tape {
	return d.core.Tape()
}
