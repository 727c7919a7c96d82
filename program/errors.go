package program

import "errors"

// Structural errors reported by Build. Either one rejects the whole program.
var (
	ErrUnmatchedLoopClose = errors.New(`unmatched character "]"`)
	ErrUnmatchedLoopOpen  = errors.New(`unmatched character "["`)
)
