// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wiresim

import (
	"strings"
)

// An Instruction is a gate driving the wire Out. Unary gates only use LHS.
//
type Instruction struct {
	Op  Op
	Out string
	LHS Operand
	RHS Operand
}

// Unary returns a one input instruction: Assign or Not.
//
func Unary(op Op, in Operand, out string) Instruction {
	return Instruction{Op: op, Out: out, LHS: in}
}

// Binary returns a two inputs instruction.
//
func Binary(op Op, lhs, rhs Operand, out string) Instruction {
	return Instruction{Op: op, Out: out, LHS: lhs, RHS: rhs}
}

// Inputs returns the gate's operands.
//
func (i Instruction) Inputs() []Operand {
	if i.Op.Arity() == 2 {
		return []Operand{i.LHS, i.RHS}
	}
	return []Operand{i.LHS}
}

// Refs returns the names of the wires the instruction reads.
//
func (i Instruction) Refs() []string {
	var refs []string
	for _, o := range i.Inputs() {
		if o.IsRef() {
			refs = append(refs, o.Name())
		}
	}
	return refs
}

// Eval computes the instruction's output from the values in s. It returns
// false if any input references a wire not yet in s. Eval does not modify
// s.
//
func (i Instruction) Eval(s *Store) (uint16, bool) {
	a, ok := i.LHS.Value(s)
	if !ok {
		return 0, false
	}
	var b uint16
	if i.Op.Arity() == 2 {
		if b, ok = i.RHS.Value(s); !ok {
			return 0, false
		}
	}
	return i.Op.Apply(a, b), true
}

func (i Instruction) check() string {
	switch {
	case !i.Op.valid():
		return "invalid gate " + i.Op.String()
	case !IsWireName(i.Out):
		return "invalid output wire name"
	case !i.LHS.valid():
		return "missing input"
	case i.Op.Arity() == 2 && !i.RHS.valid():
		return "missing second input"
	case i.Op.Arity() == 1 && i.RHS.kind != kindNone:
		return "unexpected second input"
	}
	return ""
}

// String returns the instruction in circuit description form.
//
func (i Instruction) String() string {
	var b strings.Builder
	switch i.Op.Arity() {
	case 1:
		if m := i.Op.Mnemonic(); m != "" {
			b.WriteString(m)
			b.WriteByte(' ')
		}
		b.WriteString(i.LHS.String())
	case 2:
		b.WriteString(i.LHS.String())
		b.WriteByte(' ')
		b.WriteString(i.Op.Mnemonic())
		b.WriteByte(' ')
		b.WriteString(i.RHS.String())
	default:
		b.WriteString(i.Op.String())
	}
	b.WriteString(" -> ")
	b.WriteString(i.Out)
	return b.String()
}
