// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wiresim

import "strconv"

// Op is a gate function.
//
type Op uint8

// Supported gates.
//
// All values are 16 bits unsigned words. Shifts are logical; shifting by 16
// or more yields 0.
//
const (
	Assign Op = iota // out = in
	Not              // out = ^in
	And              // out = lhs & rhs
	Or               // out = lhs | rhs
	Lshift           // out = lhs << rhs
	Rshift           // out = lhs >> rhs
	opCount
)

type gate struct {
	name  string
	arity int
	fn    func(a, b uint16) uint16
}

var gates = [opCount]gate{
	Assign: {"", 1, func(a, _ uint16) uint16 { return a }},
	Not:    {"NOT", 1, func(a, _ uint16) uint16 { return ^a }},
	And:    {"AND", 2, func(a, b uint16) uint16 { return a & b }},
	Or:     {"OR", 2, func(a, b uint16) uint16 { return a | b }},
	Lshift: {"LSHIFT", 2, func(a, b uint16) uint16 { return a << b }},
	Rshift: {"RSHIFT", 2, func(a, b uint16) uint16 { return a >> b }},
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, opCount)
	for op := Op(0); op < opCount; op++ {
		m[gates[op].name] = op
	}
	return m
}()

// OpByName returns the gate with the given mnemonic. The empty string maps
// to Assign.
//
func OpByName(name string) (Op, bool) {
	op, ok := opsByName[name]
	return op, ok
}

// Mnemonic returns the gate name as used in circuit descriptions.
// Assign has an empty mnemonic.
//
func (o Op) Mnemonic() string {
	if o >= opCount {
		return ""
	}
	return gates[o].name
}

// Arity returns the number of inputs of the gate.
//
func (o Op) Arity() int {
	if o >= opCount {
		return 0
	}
	return gates[o].arity
}

func (o Op) valid() bool { return o < opCount }

// Apply computes the gate output for the given inputs. b is ignored by
// unary gates.
//
func (o Op) Apply(a, b uint16) uint16 {
	return gates[o].fn(a, b)
}

func (o Op) String() string {
	switch {
	case o == Assign:
		return "ASSIGN"
	case o < opCount:
		return gates[o].name
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}
