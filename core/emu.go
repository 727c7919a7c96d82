package core

import (
	"fmt"
	"io"

	"github.com/sarchlab/cellar/program"
	"github.com/sarchlab/cellar/terminal"
)

type coreState struct {
	Tape  *Tape
	Steps uint64
}

type flusher interface {
	Flush() error
}

type instEmulator struct {
	term        terminal.Terminal
	out         io.Writer
	diag        io.Writer
	eof         EOFPolicy
	dumpColumns int
}

// RunInsts executes a sequence of instructions in order. It stops at the
// first error, which includes ExitSignal and InterruptSignal.
func (i instEmulator) RunInsts(insts []program.Inst, state *coreState) error {
	for _, inst := range insts {
		if err := i.RunInst(inst, state); err != nil {
			return err
		}
	}

	return nil
}

// RunInst executes one instruction node. Loop nodes run their whole body
// once per iteration.
func (i instEmulator) RunInst(inst program.Inst, state *coreState) error {
	state.Steps++

	switch inst.OpCode {
	case program.OpIncrement:
		state.Tape.Increment()
	case program.OpDecrement:
		state.Tape.Decrement()
	case program.OpMoveLeft:
		state.Tape.MoveLeft()
	case program.OpMoveRight:
		state.Tape.MoveRight()
	case program.OpOutput:
		return i.runOutput(state)
	case program.OpInput:
		return i.runInput(state)
	case program.OpTerminate:
		return i.runTerminate(state)
	case program.OpDebugDump:
		return i.runDebugDump(state)
	case program.OpLoop:
		return i.runLoop(inst, state)
	default:
		panic(fmt.Sprintf("unknown instruction %s at step %d", inst.OpCode, state.Steps))
	}

	return nil
}

func (i instEmulator) runLoop(inst program.Inst, state *coreState) error {
	for state.Tape.Read() != 0 {
		if err := i.RunInsts(inst.Body, state); err != nil {
			return err
		}
	}

	return nil
}

func (i instEmulator) runOutput(state *coreState) error {
	value := state.Tape.Read()

	if _, err := i.out.Write([]byte{value}); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if f, ok := i.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flushing output: %w", err)
		}
	}

	Trace("Output", "Value", value, "Head", state.Tape.Head())

	return nil
}

// runInput waits for one keystroke. Keystrokes without a character are
// skipped and the wait goes on.
func (i instEmulator) runInput(state *coreState) error {
	for {
		key, err := i.term.NextKey()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		switch key.Kind {
		case terminal.KeyChar:
			// Raw and Stream keys are single bytes.
			state.Tape.Write(byte(key.Char))
		case terminal.KeyEnter:
			state.Tape.Write('\n')
		case terminal.KeyInterrupt:
			Trace("Interrupt", "Head", state.Tape.Head())
			return &InterruptSignal{Reason: "Received Ctrl-C"}
		case terminal.KeyEOF:
			i.applyEOF(state)
		default:
			continue
		}

		Trace("Input", "Key", key.Kind, "Value", state.Tape.Read())

		return nil
	}
}

func (i instEmulator) applyEOF(state *coreState) {
	switch i.eof {
	case EOFZero:
		state.Tape.Write(0)
	case EOFMax:
		state.Tape.Write(0xff)
	case EOFKeep:
	}
}

func (i instEmulator) runTerminate(state *coreState) error {
	code := state.Tape.Read()
	Trace("Terminate", "Code", code, "Steps", state.Steps)

	return &ExitSignal{Code: code}
}

func (i instEmulator) runDebugDump(state *coreState) error {
	if err := DumpTape(i.diag, state.Tape, i.dumpColumns); err != nil {
		return fmt.Errorf("dumping tape: %w", err)
	}

	return nil
}
