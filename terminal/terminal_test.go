package terminal_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/cellar/terminal"
)

var _ = Describe("Stream", func() {
	It("should deliver bytes, Enter for newline, and EOF at the end", func() {
		s := terminal.NewStream(strings.NewReader("hi\r\n"))

		var events []terminal.KeyEvent
		for i := 0; i < 5; i++ {
			e, err := s.NextKey()
			Expect(err).ToNot(HaveOccurred())
			events = append(events, e)
		}

		Expect(events).To(Equal([]terminal.KeyEvent{
			terminal.Char('h'),
			terminal.Char('i'),
			terminal.Ignored,
			terminal.Enter,
			terminal.EOF,
		}))
	})

	It("should pass bytes that are not valid UTF-8 through unchanged", func() {
		s := terminal.NewStream(strings.NewReader("\xc3\xa9\xff\x80"))

		var got []byte
		for {
			e, err := s.NextKey()
			Expect(err).ToNot(HaveOccurred())
			if e.Kind == terminal.KeyEOF {
				break
			}
			Expect(e.Kind).To(Equal(terminal.KeyChar))
			got = append(got, byte(e.Char))
		}

		Expect(got).To(Equal([]byte{0xc3, 0xa9, 0xff, 0x80}))
	})

	It("should accept mode switches", func() {
		s := terminal.NewStream(strings.NewReader(""))

		Expect(s.EnterUncooked()).To(Succeed())
		Expect(s.RestoreCooked()).To(Succeed())
	})
})

var _ = Describe("Script", func() {
	It("should replay events then report EOF", func() {
		s := terminal.NewScript(terminal.Keys("a\n")...)
		Expect(s.Remaining()).To(Equal(2))

		e, _ := s.NextKey()
		Expect(e).To(Equal(terminal.Char('a')))
		e, _ = s.NextKey()
		Expect(e).To(Equal(terminal.Enter))
		e, _ = s.NextKey()
		Expect(e).To(Equal(terminal.EOF))
	})

	It("should count each restore of an uncooked terminal once", func() {
		s := terminal.NewScript()

		Expect(s.EnterUncooked()).To(Succeed())
		Expect(s.Uncooked()).To(BeTrue())
		Expect(s.RestoreCooked()).To(Succeed())
		Expect(s.RestoreCooked()).To(Succeed())

		Expect(s.Entered).To(Equal(1))
		Expect(s.Restored).To(Equal(1))
		Expect(s.Uncooked()).To(BeFalse())
	})
})

var _ = Describe("KeyKind", func() {
	It("should have readable names", func() {
		Expect(terminal.KeyInterrupt.String()).To(Equal("Interrupt"))
		Expect(terminal.KeyKind(42).String()).To(Equal("KeyKind(42)"))
	})
})
