package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/uvmlab/uvm/asm"
)

func main() {
	asmCmd := &cli.Command{
		Name:        "asm",
		Description: "translate a source file and write the record listing",
		Action:      asmAct,
		Args:        cli.Args{},
	}

	dumpCmd := &cli.Command{
		Name:        "dump",
		Description: "translate source files and print their records",
		Action:      dumpAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "uvm",
		Description: "uvm is a tool for assembling uvm source code",
		Commands: []*cli.Command{
			asmCmd,
			dumpCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func asmAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	if len(c.Args) != 2 {
		return errors.New("want input and output files, got %d args", len(c.Args))
	}

	prog, err := asm.AssembleFile(ctx, c.Args[0])
	if err != nil {
		return errors.Wrap(err, "assemble %v", c.Args[0])
	}

	f, err := os.Create(c.Args[1])
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	defer func() {
		e := f.Close()
		if err == nil {
			err = errors.Wrap(e, "close output")
		}
	}()

	err = asm.WriteListing(f, prog)
	if err != nil {
		return errors.Wrap(err, "write %v", c.Args[1])
	}

	fmt.Printf("assembled %d records into %v\n", len(prog), c.Args[1])

	return nil
}

func dumpAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		prog, err := asm.AssembleFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "assemble %v", a)
		}

		for i, x := range prog {
			fmt.Printf("%d: %v\n", i, x)
		}
	}

	return nil
}
