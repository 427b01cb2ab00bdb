// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package wiretest provides utility functions for testing circuits.
//
package wiretest

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/db47h/wiresim"
	"github.com/google/go-cmp/cmp"
)

// Sample is a small circuit exercising every gate type.
//
const Sample = `123 -> x
456 -> y
x AND y -> d
x OR y -> e
x LSHIFT 2 -> f
y RSHIFT 2 -> g
NOT x -> h
NOT y -> i
`

// SampleValues holds the resolved values of Sample.
//
var SampleValues = map[string]uint16{
	"d": 72,
	"e": 507,
	"f": 492,
	"g": 114,
	"h": 65412,
	"i": 65079,
	"x": 123,
	"y": 456,
}

// CompareStores fails t if got does not hold exactly the values in want.
//
func CompareStores(t testing.TB, want map[string]uint16, got *wiresim.Store) {
	t.Helper()
	if diff := cmp.Diff(want, got.Map()); diff != "" {
		t.Errorf("wire values mismatch (-want +got):\n%s", diff)
	}
}

// Shuffle returns a shuffled copy of ins.
//
func Shuffle(rnd *rand.Rand, ins []wiresim.Instruction) []wiresim.Instruction {
	r := make([]wiresim.Instruction, len(ins))
	copy(r, ins)
	rnd.Shuffle(len(r), func(i, j int) { r[i], r[j] = r[j], r[i] })
	return r
}

// Dependents returns the set of wires whose value depends, directly or not,
// on the named wire. The wire itself is not included unless it is part of a
// loop.
//
func Dependents(ins []wiresim.Instruction, wire string) map[string]bool {
	readers := make(map[string][]string)
	for _, in := range ins {
		for _, ref := range in.Refs() {
			readers[ref] = append(readers[ref], in.Out)
		}
	}
	deps := make(map[string]bool)
	todo := []string{wire}
	for len(todo) > 0 {
		w := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for _, r := range readers[w] {
			if !deps[r] {
				deps[r] = true
				todo = append(todo, r)
			}
		}
	}
	return deps
}

// WriteCounter returns a resolver option counting store writes per wire,
// and the counts map it updates.
//
func WriteCounter() (wiresim.Option, map[string]int) {
	counts := make(map[string]int)
	return wiresim.OnWrite(func(name string, _ uint16) { counts[name]++ }), counts
}

// RandomCircuit builds a random loop free circuit of n wires named w0 to
// w<n-1>. Wire i only reads literals or wires j < i, and instructions are
// returned in reverse dependency order so that most references are forward
// references.
//
func RandomCircuit(rnd *rand.Rand, n int) []wiresim.Instruction {
	name := func(i int) string { return "w" + strconv.Itoa(i) }
	operand := func(i int) wiresim.Operand {
		if i == 0 || rnd.Intn(4) == 0 {
			return wiresim.Lit(uint16(rnd.Intn(1 << 16)))
		}
		return wiresim.Ref(name(rnd.Intn(i)))
	}
	shift := func(i int) wiresim.Operand {
		if i == 0 || rnd.Intn(2) == 0 {
			return wiresim.Lit(uint16(rnd.Intn(16)))
		}
		return wiresim.Ref(name(rnd.Intn(i)))
	}

	ins := make([]wiresim.Instruction, n)
	for i := 0; i < n; i++ {
		out := name(i)
		var in wiresim.Instruction
		switch op := wiresim.Op(rnd.Intn(6)); op {
		case wiresim.Assign, wiresim.Not:
			in = wiresim.Unary(op, operand(i), out)
		case wiresim.Lshift, wiresim.Rshift:
			in = wiresim.Binary(op, operand(i), shift(i), out)
		default:
			in = wiresim.Binary(op, operand(i), operand(i), out)
		}
		ins[n-1-i] = in
	}
	return ins
}
