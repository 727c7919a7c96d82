package program

// Build turns a token sequence into an instruction tree. The tokens between
// a loop-open and its matching loop-close become the body of one OpLoop
// node. A loop-close without an open fails immediately with
// ErrUnmatchedLoopClose; an open left unclosed at the end fails with
// ErrUnmatchedLoopOpen.
func Build(tokens []Opcode) (Program, error) {
	p := parser{tokens: tokens}

	insts, err := p.sequence(0)
	if err != nil {
		return Program{}, err
	}

	return Program{Insts: insts}, nil
}

// Parse scans and builds source text in one step.
func Parse(source string, comments bool) (Program, error) {
	return Build(Scan(source, comments))
}

// parser walks the token sequence with a single shared cursor, so every
// token is visited exactly once however deep the loops nest.
type parser struct {
	tokens []Opcode
	pos    int
}

// sequence consumes tokens until the loop-close ending the current body, or
// until the input runs out at the top level.
func (p *parser) sequence(depth int) ([]Inst, error) {
	var insts []Inst

	for p.pos < len(p.tokens) {
		op := p.tokens[p.pos]
		p.pos++

		switch op {
		case OpLoopOpen:
			body, err := p.sequence(depth + 1)
			if err != nil {
				return nil, err
			}
			insts = append(insts, Inst{OpCode: OpLoop, Body: body})
		case OpLoopClose:
			if depth == 0 {
				return nil, ErrUnmatchedLoopClose
			}
			return insts, nil
		default:
			insts = append(insts, Inst{OpCode: op})
		}
	}

	if depth > 0 {
		return nil, ErrUnmatchedLoopOpen
	}

	return insts, nil
}
