package encode

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/uvmlab/uvm/asm/ir"
	"github.com/uvmlab/uvm/asm/parse"
)

type (
	UnknownMnemonicError struct {
		Mnemonic string
	}

	ArityError struct {
		Mnemonic  string
		Want, Got int
	}

	NumberError struct {
		Text string
	}
)

// Encode translates parsed instructions into IR records, in order.
// The first invalid instruction aborts the whole translation.
func Encode(ctx context.Context, p []parse.Instruction) (prog []ir.Record, err error) {
	tr := tlog.SpanFromContext(ctx)

	for _, in := range p {
		x, err := encodeInstruction(in)
		if err != nil {
			return nil, errors.Wrap(err, "line %d", in.Line)
		}

		if tr.If("encode") {
			tr.Printw("record", "line", in.Line, "record", x)
		}

		prog = append(prog, x)
	}

	return prog, nil
}

func encodeInstruction(in parse.Instruction) (x ir.Record, err error) {
	op, ok := ir.Mnemonics[in.Mnemonic]
	if !ok {
		return nil, UnknownMnemonicError{Mnemonic: in.Mnemonic}
	}

	var want int

	switch op {
	case ir.OpLoadConst, ir.OpStore:
		want = 2
	case ir.OpBinaryOp:
		want = 4
	default:
		panic(op) // table entry without a shape rule
	}

	if len(in.Args) != want {
		return nil, ArityError{Mnemonic: in.Mnemonic, Want: want, Got: len(in.Args)}
	}

	v := make([]int64, len(in.Args))

	for i, a := range in.Args {
		v[i], err = parseNumber(a)
		if err != nil {
			return nil, err
		}
	}

	switch op {
	case ir.OpLoadConst:
		return ir.LoadConst{Dst: v[0], Value: v[1]}, nil
	case ir.OpStore:
		return ir.Store{Src: v[0], Dst: v[1]}, nil
	case ir.OpBinaryOp:
		return ir.BinaryOp{Result: v[0], Operand2: v[1], Offset: v[2], Base: v[3]}, nil
	default:
		panic(op)
	}
}

// parseNumber decodes one argument. The 0x prefix (lower-case only)
// selects hex; hex digits carry no sign. Anything else is signed decimal.
func parseNumber(s string) (int64, error) {
	var v int64
	var err error

	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		if rest == "" || rest[0] == '+' || rest[0] == '-' {
			return 0, NumberError{Text: s}
		}

		v, err = strconv.ParseInt(rest, 16, 64)
	} else {
		v, err = strconv.ParseInt(s, 10, 64)
	}

	if err != nil {
		return 0, NumberError{Text: s}
	}

	return v, nil
}

func (e UnknownMnemonicError) Error() string {
	return fmt.Sprintf("unknown mnemonic: %q", e.Mnemonic)
}

func (e ArityError) Error() string {
	return fmt.Sprintf("%v: want %d args, got %d", e.Mnemonic, e.Want, e.Got)
}

func (e NumberError) Error() string {
	return fmt.Sprintf("bad number: %q", e.Text)
}
