package program

import "strings"

// Inst is one node of the instruction tree. Only OpLoop nodes have a Body.
type Inst struct {
	OpCode Opcode
	Body   []Inst
}

// IsLoop reports whether the node owns a loop body.
func (i Inst) IsLoop() bool {
	return i.OpCode == OpLoop
}

// Program is the root sequence of the instruction tree.
type Program struct {
	Insts []Inst
}

// Count returns the number of simple instruction nodes and loop nodes in the
// whole tree.
func (p Program) Count() (leaves, loops int) {
	var walk func([]Inst)
	walk = func(insts []Inst) {
		for _, inst := range insts {
			if inst.IsLoop() {
				loops++
				walk(inst.Body)
				continue
			}
			leaves++
		}
	}
	walk(p.Insts)

	return leaves, loops
}

// Depth returns the deepest loop nesting level; a program without loops has
// depth 0.
func (p Program) Depth() int {
	var depth func([]Inst) int
	depth = func(insts []Inst) int {
		deepest := 0
		for _, inst := range insts {
			if !inst.IsLoop() {
				continue
			}
			if d := depth(inst.Body) + 1; d > deepest {
				deepest = d
			}
		}
		return deepest
	}

	return depth(p.Insts)
}

// String renders the program back into canonical source text.
func (p Program) String() string {
	var sb strings.Builder
	writeInsts(&sb, p.Insts)

	return sb.String()
}

func writeInsts(sb *strings.Builder, insts []Inst) {
	for _, inst := range insts {
		if inst.IsLoop() {
			sb.WriteRune(DefaultISA.Symbol(OpLoopOpen))
			writeInsts(sb, inst.Body)
			sb.WriteRune(DefaultISA.Symbol(OpLoopClose))
			continue
		}
		sb.WriteRune(DefaultISA.Symbol(inst.OpCode))
	}
}
