package program

// CommentMarker starts a line comment when comment mode is enabled. The
// comment runs up to and including the next newline.
const CommentMarker = '#'

// Position locates a character in the source text. Line and Column are
// 1-based and count runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Walk visits every instruction character of source in order. All other
// characters are skipped. With comments enabled, everything from a '#' up to
// the end of its line is skipped as well, instruction characters included.
func Walk(source string, comments bool, visit func(op Opcode, pos Position)) {
	pos := Position{Line: 1}
	inComment := false

	for offset, ch := range source {
		pos.Offset = offset
		pos.Column++

		switch {
		case inComment:
			if ch == '\n' {
				inComment = false
			}
		case comments && ch == CommentMarker:
			inComment = true
		default:
			if op, ok := DefaultISA.Lookup(ch); ok {
				visit(op, pos)
			}
		}

		if ch == '\n' {
			pos.Line++
			pos.Column = 0
		}
	}
}

// Scan converts source text into its instruction tokens. It never fails;
// text without instructions yields an empty sequence.
func Scan(source string, comments bool) []Opcode {
	var tokens []Opcode

	Walk(source, comments, func(op Opcode, _ Position) {
		tokens = append(tokens, op)
	})

	return tokens
}
