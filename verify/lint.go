// Package verify checks program text before it is run.
package verify

import (
	"fmt"

	"github.com/sarchlab/cellar/program"
)

// IssueType categorizes lint issues.
type IssueType string

const (
	IssueUnmatchedClose IssueType = "UNMATCHED_CLOSE" // "]" with no open loop
	IssueUnclosedOpen   IssueType = "UNCLOSED_OPEN"   // "[" never closed
)

// Issue represents a single lint issue.
type Issue struct {
	Type    IssueType
	Pos     program.Position
	Message string
}

// Err returns the structural error the issue corresponds to.
func (i Issue) Err() error {
	if i.Type == IssueUnmatchedClose {
		return program.ErrUnmatchedLoopClose
	}
	return program.ErrUnmatchedLoopOpen
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d, column %d: %s", i.Pos.Line, i.Pos.Column, i.Message)
}

// RunLint reports every loop bracket that has no partner. Unmatched closes
// come first in source order, followed by unclosed opens in source order, so
// the first issue is the one the tree builder rejects the program for.
// Characters inside comments are ignored the same way the scanner ignores
// them.
func RunLint(source string, comments bool) []Issue {
	var issues []Issue
	var open []program.Position

	program.Walk(source, comments, func(op program.Opcode, pos program.Position) {
		switch op {
		case program.OpLoopOpen:
			open = append(open, pos)
		case program.OpLoopClose:
			if len(open) == 0 {
				issues = append(issues, Issue{
					Type:    IssueUnmatchedClose,
					Pos:     pos,
					Message: program.ErrUnmatchedLoopClose.Error(),
				})
				return
			}
			open = open[:len(open)-1]
		}
	})

	for _, pos := range open {
		issues = append(issues, Issue{
			Type:    IssueUnclosedOpen,
			Pos:     pos,
			Message: program.ErrUnmatchedLoopOpen.Error(),
		})
	}

	return issues
}
