// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wiresim

import (
	"io"
	"strings"

	"github.com/db47h/wiresim/internal/hdl"
	"github.com/pkg/errors"
)

// Parse reads a circuit description and returns its instructions in input
// order. See ParseString for the syntax.
//
func Parse(r io.Reader) ([]Instruction, error) {
	p, err := hdl.NewParser(r)
	if err != nil {
		return nil, err
	}
	var ins []Instruction
	for {
		st, err := p.Next()
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%v", err)
		}
		if st == nil {
			return ins, nil
		}
		in, err := instruction(st)
		if err != nil {
			return nil, err
		}
		ins = append(ins, in)
	}
}

// ParseString parses a circuit description, one gate per line:
//
//	<operand> -> <wire>
//	NOT <operand> -> <wire>
//	<operand> AND <operand> -> <wire>
//	<operand> OR <operand> -> <wire>
//	<operand> LSHIFT <operand> -> <wire>
//	<operand> RSHIFT <operand> -> <wire>
//
// An operand is either a decimal integer in the range [0, 65535] or a wire
// name. Blank lines are ignored and '#' starts a comment.
//
func ParseString(s string) ([]Instruction, error) {
	return Parse(strings.NewReader(s))
}

func instruction(st *hdl.Stmt) (Instruction, error) {
	op, ok := OpByName(st.Op)
	if !ok || op.Arity() != len(st.Args) {
		return Instruction{}, errors.Wrapf(ErrMalformed, "line %d, col %d: invalid gate %q", st.Pos.Line, st.Pos.Col, st.Op)
	}
	in := Instruction{Op: op, Out: st.Out.Name, LHS: operand(st.Args[0])}
	if op.Arity() == 2 {
		in.RHS = operand(st.Args[1])
	}
	return in, nil
}

func operand(a hdl.Arg) Operand {
	if a.IsInt() {
		return Lit(a.Value)
	}
	return Ref(a.Name)
}
