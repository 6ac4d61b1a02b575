package parse

import (
	"context"
	"fmt"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

type (
	// Instruction is one parsed source line: the upper-cased mnemonic
	// and its comma-separated arguments, each trimmed, not yet decoded.
	Instruction struct {
		Mnemonic string
		Args     []string

		Line int // 1-based source line
	}

	SyntaxError struct {
		Line int
		Text string
	}
)

// Parse splits source text into an ordered instruction list.
// Blank lines and `;` comments contribute nothing but still count
// for line numbering.
func Parse(ctx context.Context, text []byte) (p []Instruction, err error) {
	tr := tlog.SpanFromContext(ctx)

	for n, line := range strings.Split(string(text), "\n") {
		ins, ok, err := parseLine(line)
		if err != nil {
			return nil, SyntaxError{Line: n + 1, Text: line}
		}

		if !ok {
			continue
		}

		ins.Line = n + 1

		if tr.If("parse_line") {
			tr.Printw("instruction", "line", ins.Line, "mnemonic", ins.Mnemonic, "args", ins.Args, "from", loc.Callers(1, 2))
		}

		p = append(p, ins)
	}

	return p, nil
}

func parseLine(line string) (ins Instruction, ok bool, err error) {
	// a panic while splitting means a parser bug on this line,
	// not a reason to crash the tool
	defer func() {
		if p := recover(); p != nil {
			err = errors.New("split line: %v", p)
		}
	}()

	line = strings.TrimSpace(line)
	if line == "" || line[0] == ';' {
		return ins, false, nil
	}

	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}

	tok := strings.Fields(line)[0]

	ins.Mnemonic = strings.ToUpper(tok)

	rest := strings.TrimSpace(line[len(tok):])
	if rest == "" {
		return ins, true, nil
	}

	for _, a := range strings.Split(rest, ",") {
		ins.Args = append(ins.Args, strings.TrimSpace(a))
	}

	return ins, true, nil
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d: %q", e.Line, e.Text)
}
