package core

import "fmt"

// ExitSignal stops a run at a Terminate instruction. It carries the value
// of the current cell and is not a failure.
type ExitSignal struct {
	Code byte
}

func (s *ExitSignal) Error() string {
	return fmt.Sprintf("program exited with code %d", s.Code)
}

// InterruptSignal stops a run when the user sends the interrupt keystroke
// while the program waits for input.
type InterruptSignal struct {
	Reason string
}

func (s *InterruptSignal) Error() string {
	return s.Reason
}

// EOFPolicy decides what Input stores once the key source is exhausted.
type EOFPolicy int

const (
	// EOFZero stores 0.
	EOFZero EOFPolicy = iota
	// EOFMax stores 255.
	EOFMax
	// EOFKeep leaves the cell unchanged.
	EOFKeep
)

var eofPolicyNames = map[EOFPolicy]string{
	EOFZero: "zero",
	EOFMax:  "max",
	EOFKeep: "keep",
}

func (p EOFPolicy) String() string {
	if name, ok := eofPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("EOFPolicy(%d)", int(p))
}

// ParseEOFPolicy converts a policy name ("zero", "max", "keep").
func ParseEOFPolicy(name string) (EOFPolicy, bool) {
	for p, n := range eofPolicyNames {
		if n == name {
			return p, true
		}
	}
	return EOFZero, false
}
