package asm

import (
	"context"
	"fmt"
	"io"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/uvmlab/uvm/asm/encode"
	"github.com/uvmlab/uvm/asm/ir"
	"github.com/uvmlab/uvm/asm/parse"
)

func AssembleFile(ctx context.Context, name string) (prog []ir.Record, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Assemble(ctx, name, text)
}

// Assemble translates source text into the ordered IR record sequence.
// It fails on the first invalid line or instruction; no partial output.
func Assemble(ctx context.Context, name string, text []byte) (prog []ir.Record, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "assemble", "name", name)
	defer tr.Finish("err", &err)

	p, err := parse.Parse(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "parse text")
	}

	prog, err = encode.Encode(ctx, p)
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	return prog, nil
}

// WriteListing dumps records one per line in field-labeled form.
// It stands in for the binary container until that format is fixed.
func WriteListing(w io.Writer, prog []ir.Record) error {
	for _, x := range prog {
		_, err := fmt.Fprintf(w, "%v\n", x)
		if err != nil {
			return errors.Wrap(err, "write record")
		}
	}

	return nil
}
