package core

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/cellar/program"
	"github.com/sarchlab/cellar/terminal"
)

var _ = Describe("InstEmulator", func() {
	var (
		ie   instEmulator
		s    coreState
		out  *bytes.Buffer
		diag *bytes.Buffer
		keys *terminal.Script
	)

	BeforeEach(func() {
		out = new(bytes.Buffer)
		diag = new(bytes.Buffer)
		keys = terminal.NewScript()
		ie = instEmulator{
			term:        keys,
			out:         out,
			diag:        diag,
			dumpColumns: 4,
		}
		s = coreState{Tape: NewTape()}
	})

	leaf := func(op program.Opcode) program.Inst {
		return program.Inst{OpCode: op}
	}

	Context("when running tape instructions", func() {
		It("should increment and decrement", func() {
			Expect(ie.RunInst(leaf(program.OpIncrement), &s)).To(Succeed())
			Expect(ie.RunInst(leaf(program.OpIncrement), &s)).To(Succeed())
			Expect(ie.RunInst(leaf(program.OpDecrement), &s)).To(Succeed())

			Expect(s.Tape.Read()).To(Equal(byte(1)))
			Expect(s.Steps).To(Equal(uint64(3)))
		})

		It("should move the head", func() {
			Expect(ie.RunInst(leaf(program.OpMoveRight), &s)).To(Succeed())
			Expect(ie.RunInst(leaf(program.OpMoveRight), &s)).To(Succeed())
			Expect(ie.RunInst(leaf(program.OpMoveLeft), &s)).To(Succeed())

			Expect(s.Tape.Head()).To(Equal(1))
		})
	})

	Context("when running Output", func() {
		It("should write the cell as a single raw byte", func() {
			s.Tape.Write(200)

			Expect(ie.RunInst(leaf(program.OpOutput), &s)).To(Succeed())

			Expect(out.Bytes()).To(Equal([]byte{200}))
		})
	})

	Context("when running Input", func() {
		It("should store a plain character", func() {
			keys = terminal.NewScript(terminal.Char('A'))
			ie.term = keys

			Expect(ie.RunInst(leaf(program.OpInput), &s)).To(Succeed())
			Expect(s.Tape.Read()).To(Equal(byte('A')))
		})

		It("should store a newline for Enter", func() {
			ie.term = terminal.NewScript(terminal.Enter)

			Expect(ie.RunInst(leaf(program.OpInput), &s)).To(Succeed())
			Expect(s.Tape.Read()).To(Equal(byte('\n')))
		})

		It("should skip keystrokes without a character", func() {
			keys = terminal.NewScript(terminal.Ignored, terminal.Ignored, terminal.Char('z'))
			ie.term = keys

			Expect(ie.RunInst(leaf(program.OpInput), &s)).To(Succeed())
			Expect(s.Tape.Read()).To(Equal(byte('z')))
			Expect(keys.Remaining()).To(Equal(0))
		})

		It("should abort on the interrupt keystroke", func() {
			ie.term = terminal.NewScript(terminal.Interrupt)
			s.Tape.Write(5)

			err := ie.RunInst(leaf(program.OpInput), &s)

			var sig *InterruptSignal
			Expect(errors.As(err, &sig)).To(BeTrue())
			Expect(sig.Reason).To(Equal("Received Ctrl-C"))
			Expect(s.Tape.Read()).To(Equal(byte(5)))
		})

		DescribeTable("end of input",
			func(policy EOFPolicy, expected byte) {
				ie.eof = policy
				s.Tape.Write(42)

				Expect(ie.RunInst(leaf(program.OpInput), &s)).To(Succeed())
				Expect(s.Tape.Read()).To(Equal(expected))
			},
			Entry("zero", EOFZero, byte(0)),
			Entry("max", EOFMax, byte(255)),
			Entry("keep", EOFKeep, byte(42)),
		)
	})

	Context("when running Terminate", func() {
		It("should signal the current cell as the exit code", func() {
			s.Tape.Write(3)

			err := ie.RunInst(leaf(program.OpTerminate), &s)

			Expect(err).To(Equal(&ExitSignal{Code: 3}))
		})
	})

	Context("when running DebugDump", func() {
		It("should print the tape without changing it", func() {
			s.Tape.Write(17)
			s.Tape.MoveRight()
			s.Tape.Write(4)

			Expect(ie.RunInst(leaf(program.OpDebugDump), &s)).To(Succeed())

			Expect(strings.ToLower(diag.String())).To(ContainSubstring("tape (head=1, cells=2)"))
			Expect(diag.String()).To(ContainSubstring("17"))
			Expect(diag.String()).To(ContainSubstring("[4]"))
			Expect(s.Tape.Cells()).To(Equal([]byte{17, 4}))
			Expect(s.Tape.Head()).To(Equal(1))
			Expect(out.Len()).To(Equal(0))
		})
	})

	Context("when running a loop", func() {
		It("should skip the body when the cell is zero", func() {
			loop := program.Inst{OpCode: program.OpLoop, Body: []program.Inst{
				leaf(program.OpOutput),
			}}

			Expect(ie.RunInst(loop, &s)).To(Succeed())
			Expect(out.Len()).To(Equal(0))
		})

		It("should repeat the body until the cell is zero", func() {
			s.Tape.Write(3)
			loop := program.Inst{OpCode: program.OpLoop, Body: []program.Inst{
				leaf(program.OpOutput),
				leaf(program.OpDecrement),
			}}

			Expect(ie.RunInst(loop, &s)).To(Succeed())
			Expect(out.Bytes()).To(Equal([]byte{3, 2, 1}))
		})

		It("should stop the body at a Terminate", func() {
			s.Tape.Write(9)
			loop := program.Inst{OpCode: program.OpLoop, Body: []program.Inst{
				leaf(program.OpTerminate),
				leaf(program.OpOutput),
			}}

			err := ie.RunInst(loop, &s)

			Expect(err).To(Equal(&ExitSignal{Code: 9}))
			Expect(out.Len()).To(Equal(0))
		})
	})

	It("should panic on an opcode that is not a tree node", func() {
		Expect(func() {
			_ = ie.RunInst(leaf(program.OpLoopOpen), &s)
		}).To(Panic())
	})
})
