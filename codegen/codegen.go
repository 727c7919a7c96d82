// Package codegen lowers instruction trees to C source.
package codegen

import (
	"fmt"
	"strings"

	"github.com/sarchlab/cellar/program"
)

// TapeSize is the number of cells in the generated program's buffer. The
// pointer starts at the middle so programs can move left of their start.
const TapeSize = 10000

var prologue = fmt.Sprintf(`#include <stdio.h>
#include <stdlib.h>

int main(void) {
    setbuf(stdout, NULL);
    static unsigned char tape[%d] = {0};
    unsigned char *ptr = tape + %d;
`, TapeSize, TapeSize/2)

const epilogue = `    return 0;
}
`

var leafSnippets = map[program.Opcode]string{
	program.OpIncrement: "++*ptr;",
	program.OpDecrement: "--*ptr;",
	program.OpMoveRight: "++ptr;",
	program.OpMoveLeft:  "--ptr;",
	program.OpOutput:    "putchar(*ptr);",
	program.OpInput:     "*ptr = getchar();",
	program.OpTerminate: "exit(*ptr);",
}

const (
	loopOpen  = "while (*ptr) {"
	loopClose = "}"
	indent    = "    "
)

// Writer appends C statements to a buffer, indenting loop bodies.
type Writer struct {
	out   *strings.Builder
	depth int
}

// New creates a writer on top of out.
func New(out *strings.Builder) *Writer {
	return &Writer{out: out, depth: 1}
}

// WritePrologue writes the includes, the tape declaration, and the opening
// of main.
func (w *Writer) WritePrologue() {
	w.out.WriteString(prologue)
}

// WriteEpilogue closes main.
func (w *Writer) WriteEpilogue() {
	w.out.WriteString(epilogue)
}

// WriteInst writes the statement for one simple instruction. DebugDump has
// no C equivalent and is dropped.
func (w *Writer) WriteInst(op program.Opcode) {
	snippet, ok := leafSnippets[op]
	if !ok {
		return
	}
	w.line(snippet)
}

// WriteLoop wraps whatever body writes in a while loop on the current cell.
func (w *Writer) WriteLoop(body func()) {
	w.line(loopOpen)
	w.depth++
	body()
	w.depth--
	w.line(loopClose)
}

// WriteInsts writes a sequence of nodes, recursing into loop bodies.
func (w *Writer) WriteInsts(insts []program.Inst) {
	for _, inst := range insts {
		if inst.IsLoop() {
			body := inst.Body
			w.WriteLoop(func() { w.WriteInsts(body) })
			continue
		}
		w.WriteInst(inst.OpCode)
	}
}

func (w *Writer) line(stmt string) {
	w.out.WriteString(strings.Repeat(indent, w.depth))
	w.out.WriteString(stmt)
	w.out.WriteByte('\n')
}

// Emit returns a complete C program equivalent to prog.
func Emit(prog program.Program) string {
	var out strings.Builder

	w := New(&out)
	w.WritePrologue()
	w.WriteInsts(prog.Insts)
	w.WriteEpilogue()

	return out.String()
}
