package program

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Opcode identifies one instruction of the tape language. The same values
// are used for scanned tokens and for nodes of the instruction tree, except
// that OpLoopOpen and OpLoopClose only ever appear as tokens and OpLoop only
// ever appears as a tree node.
type Opcode uint8

const (
	OpInvalid Opcode = iota
	OpIncrement
	OpDecrement
	OpMoveLeft
	OpMoveRight
	OpLoopOpen
	OpLoopClose
	OpOutput
	OpInput
	OpTerminate
	OpDebugDump

	// OpLoop is the tree node that owns the body between a matched
	// OpLoopOpen/OpLoopClose pair.
	OpLoop
)

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA.
	isaName string

	symbolToOp   map[rune]Opcode
	opToSymbol   map[Opcode]rune
	opToMnemonic map[Opcode]string
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:      name,
		symbolToOp:   make(map[rune]Opcode),
		opToSymbol:   make(map[Opcode]rune),
		opToMnemonic: make(map[Opcode]string),
	}
}

// Register a new instruction to the ISA.
func (isa *ISA) registerNewInst(symbol rune, op Opcode, mnemonic string) {
	if _, dup := isa.symbolToOp[symbol]; dup {
		panic(fmt.Sprintf("symbol %q registered twice in %s", symbol, isa.isaName))
	}

	isa.symbolToOp[symbol] = op
	isa.opToSymbol[op] = symbol
	isa.opToMnemonic[op] = mnemonic
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Lookup returns the opcode a source character stands for.
func (isa *ISA) Lookup(symbol rune) (Opcode, bool) {
	op, ok := isa.symbolToOp[symbol]
	return op, ok
}

// Symbol returns the source character of an opcode, or 0 if the opcode has
// no character (OpLoop, OpInvalid).
func (isa *ISA) Symbol(op Opcode) rune {
	return isa.opToSymbol[op]
}

// Mnemonic returns the upper-case name of an opcode.
func (isa *ISA) Mnemonic(op Opcode) string {
	if name, ok := isa.opToMnemonic[op]; ok {
		return name
	}

	if op == OpLoop {
		return "LOOP"
	}

	return fmt.Sprintf("OP(%d)", uint8(op))
}

// Symbols lists every registered source character in ascending order.
func (isa *ISA) Symbols() []rune {
	symbols := maps.Keys(isa.symbolToOp)
	slices.Sort(symbols)

	return symbols
}

// DefaultISA is the instruction set understood by the scanner.
var DefaultISA = NewISA("Cellar Tape ISA")

func init() {
	DefaultISA.registerNewInst('+', OpIncrement, "INC")
	DefaultISA.registerNewInst('-', OpDecrement, "DEC")
	DefaultISA.registerNewInst('<', OpMoveLeft, "MLT")
	DefaultISA.registerNewInst('>', OpMoveRight, "MRT")
	DefaultISA.registerNewInst('[', OpLoopOpen, "LEN")
	DefaultISA.registerNewInst(']', OpLoopClose, "LEX")
	DefaultISA.registerNewInst('.', OpOutput, "OUT")
	DefaultISA.registerNewInst(',', OpInput, "INP")
	DefaultISA.registerNewInst('&', OpTerminate, "END")
	DefaultISA.registerNewInst('?', OpDebugDump, "DBG")
}

func (op Opcode) String() string {
	return DefaultISA.Mnemonic(op)
}
