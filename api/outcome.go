package api

import "fmt"

// OutcomeKind tells how a run ended.
type OutcomeKind int

const (
	// Completed means the program ran off the end of its instructions.
	Completed OutcomeKind = iota
	// Terminated means the program executed a Terminate instruction.
	Terminated
	// Interrupted means the user aborted an input wait.
	Interrupted
)

func (k OutcomeKind) String() string {
	switch k {
	case Completed:
		return "completed"
	case Terminated:
		return "terminated"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// InterruptedExitStatus is the process status reported for an interrupted
// run, following the shell convention for SIGINT.
const InterruptedExitStatus = 130

// Outcome is the result of a run that did not fail.
type Outcome struct {
	Kind OutcomeKind
	// Code is the cell value at the Terminate instruction.
	Code byte
	// Reason describes an interruption.
	Reason string
}

// ExitStatus maps the outcome to a process exit status.
func (o Outcome) ExitStatus() int {
	switch o.Kind {
	case Terminated:
		return int(o.Code)
	case Interrupted:
		return InterruptedExitStatus
	default:
		return 0
	}
}
