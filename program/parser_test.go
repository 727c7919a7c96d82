package program_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/cellar/program"
)

var _ = Describe("Build", func() {
	build := func(src string) (program.Program, error) {
		return program.Build(program.Scan(src, false))
	}

	It("should reject a lone loop-close", func() {
		_, err := build("]")
		Expect(err).To(MatchError(program.ErrUnmatchedLoopClose))
	})

	It("should reject a lone loop-open", func() {
		_, err := build("[")
		Expect(err).To(MatchError(program.ErrUnmatchedLoopOpen))
	})

	It("should build an empty loop", func() {
		prog, err := build("[]")

		Expect(err).ToNot(HaveOccurred())
		Expect(prog.Insts).To(HaveLen(1))
		Expect(prog.Insts[0].IsLoop()).To(BeTrue())
		Expect(prog.Insts[0].Body).To(BeEmpty())
	})

	It("should fail on the first unmatched close even with opens later", func() {
		_, err := build("+]+[")
		Expect(err).To(MatchError(program.ErrUnmatchedLoopClose))
	})

	It("should report an open left unclosed inside a nested loop", func() {
		_, err := build("[[]")
		Expect(err).To(MatchError(program.ErrUnmatchedLoopOpen))
	})

	It("should nest loop bodies", func() {
		prog, err := build("+[>[-]<]-")

		Expect(err).ToNot(HaveOccurred())
		Expect(prog.Insts).To(Equal([]program.Inst{
			{OpCode: program.OpIncrement},
			{OpCode: program.OpLoop, Body: []program.Inst{
				{OpCode: program.OpMoveRight},
				{OpCode: program.OpLoop, Body: []program.Inst{
					{OpCode: program.OpDecrement},
				}},
				{OpCode: program.OpMoveLeft},
			}},
			{OpCode: program.OpDecrement},
		}))
		Expect(prog.Depth()).To(Equal(2))
	})

	It("should keep sibling loops apart", func() {
		prog, err := build("[+][-]")

		Expect(err).ToNot(HaveOccurred())
		Expect(prog.Insts).To(HaveLen(2))
		Expect(prog.Insts[0].Body[0].OpCode).To(Equal(program.OpIncrement))
		Expect(prog.Insts[1].Body[0].OpCode).To(Equal(program.OpDecrement))
	})

	DescribeTable("node counts of balanced programs",
		func(src string) {
			tokens := program.Scan(src, false)
			prog, err := program.Build(tokens)
			Expect(err).ToNot(HaveOccurred())

			simple, opens := 0, 0
			for _, tok := range tokens {
				switch tok {
				case program.OpLoopOpen:
					opens++
				case program.OpLoopClose:
				default:
					simple++
				}
			}

			leaves, loops := prog.Count()
			Expect(leaves).To(Equal(simple))
			Expect(loops).To(Equal(opens))
		},
		Entry("empty", ""),
		Entry("flat", "+-<>.,&?"),
		Entry("multiply", "++++++++[>++++++++<-]>."),
		Entry("deep", "[[[[+]]]]"),
		Entry("siblings", "[][][]"),
	)

	It("should render back to canonical source", func() {
		prog, err := program.Parse("a + [ > b . ] # ?", false)

		Expect(err).ToNot(HaveOccurred())
		Expect(prog.String()).To(Equal("+[>.]?"))
	})
})
