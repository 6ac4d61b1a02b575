package ir

import "fmt"

type (
	// Op is the numeric opcode stored in field A of a record.
	Op int

	// Record is one translated instruction. The concrete type fixes
	// which of the B..E fields exist, so a record can't carry a field
	// its opcode doesn't have.
	Record interface {
		Op() Op
		Operands() []int64
	}

	LoadConst struct {
		Dst   int64 // B
		Value int64 // C
	}

	Store struct {
		Src int64 // B
		Dst int64 // C
	}

	BinaryOp struct {
		Result   int64 // B
		Operand2 int64 // C
		Offset   int64 // D
		Base     int64 // E
	}
)

const (
	OpStore     Op = 12
	OpBinaryOp  Op = 19
	OpLoadConst Op = 20
)

// Mnemonics maps source instruction names to opcodes.
// Names are upper-case; lookups go through uppercased tokens.
var Mnemonics = map[string]Op{
	"LOAD_CONST": OpLoadConst,
	"STORE":      OpStore,
	"BINARY_OP":  OpBinaryOp,
}

func (x LoadConst) Op() Op { return OpLoadConst }
func (x Store) Op() Op     { return OpStore }
func (x BinaryOp) Op() Op  { return OpBinaryOp }

func (x LoadConst) Operands() []int64 { return []int64{x.Dst, x.Value} }
func (x Store) Operands() []int64     { return []int64{x.Src, x.Dst} }

func (x BinaryOp) Operands() []int64 {
	return []int64{x.Result, x.Operand2, x.Offset, x.Base}
}

func (x LoadConst) String() string {
	return fmt.Sprintf("{A: %d, B: %d, C: %d}", x.Op(), x.Dst, x.Value)
}

func (x Store) String() string {
	return fmt.Sprintf("{A: %d, B: %d, C: %d}", x.Op(), x.Src, x.Dst)
}

func (x BinaryOp) String() string {
	return fmt.Sprintf("{A: %d, B: %d, C: %d, D: %d, E: %d}", x.Op(), x.Result, x.Operand2, x.Offset, x.Base)
}
