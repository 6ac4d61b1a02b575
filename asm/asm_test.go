package asm

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uvmlab/uvm/asm/encode"
	"github.com/uvmlab/uvm/asm/ir"
)

const sample = `; sample program

LOAD_CONST 811, 213   ; put 213 at 811
store 709, 447
BINARY_OP 132, 412, 20, 585
`

func TestAssemble(t *testing.T) {
	ctx := context.Background()

	prog, err := Assemble(ctx, "sample.uvm", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []ir.Record{
		ir.LoadConst{Dst: 811, Value: 213},
		ir.Store{Src: 709, Dst: 447},
		ir.BinaryOp{Result: 132, Operand2: 412, Offset: 20, Base: 585},
	}, prog)
}

func TestAssembleEmpty(t *testing.T) {
	ctx := context.Background()

	prog, err := Assemble(ctx, "empty.uvm", nil)
	require.NoError(t, err)
	assert.Empty(t, prog)

	prog, err = Assemble(ctx, "comments.uvm", []byte("; nothing\n\n; here\n"))
	require.NoError(t, err)
	assert.Empty(t, prog)
}

func TestAssembleIdempotent(t *testing.T) {
	ctx := context.Background()

	a, err := Assemble(ctx, "sample.uvm", []byte(sample))
	require.NoError(t, err)

	b, err := Assemble(ctx, "sample.uvm", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestErrorCarriesLine(t *testing.T) {
	// comments and blanks above the bad line must not shift its number
	ctx := context.Background()

	src := `; header

LOAD_CONST 1, 2
STORE 1
`

	_, err := Assemble(ctx, "bad.uvm", []byte(src))
	require.Error(t, err)

	var ae encode.ArityError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "STORE", ae.Mnemonic)

	assert.Contains(t, err.Error(), "line 4")
}

func TestWriteListing(t *testing.T) {
	ctx := context.Background()

	prog, err := Assemble(ctx, "sample.uvm", []byte(sample))
	require.NoError(t, err)

	var buf bytes.Buffer

	err = WriteListing(&buf, prog)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "{A: 20, B: 811, C: 213}", lines[0])
	assert.Equal(t, "{A: 12, B: 709, C: 447}", lines[1])
	assert.Equal(t, "{A: 19, B: 132, C: 412, D: 20, E: 585}", lines[2])
}

func TestSmoke(t *testing.T) {
	ctx := context.Background()

	prog, err := Assemble(ctx, "sample.uvm", []byte(sample))
	if err != nil {
		t.Errorf("assemble: %v", err)
	}

	var buf bytes.Buffer
	_ = WriteListing(&buf, prog)

	t.Logf("listing:\n%s", buf.Bytes())
}
