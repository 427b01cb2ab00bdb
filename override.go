// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wiresim

import (
	"github.com/pkg/errors"
)

// Override returns a copy of ins where the instruction driving the wire out
// is replaced by an assignment from in. The ins slice is left untouched.
//
// This is how a wire is pinned to a given value: override it, then Resolve
// the new instruction list from scratch. For example, to feed the value of
// wire a back into wire b:
//
//	c, _ := wiresim.Resolve(ins)
//	a, _ := c.Get("a")
//	ins2, _ := wiresim.Override(ins, "b", wiresim.Lit(a))
//	c2, _ := wiresim.Resolve(ins2)
//
func Override(ins []Instruction, out string, in Operand) ([]Instruction, error) {
	if !in.valid() {
		return nil, errors.Wrapf(ErrMalformed, "override of wire %q: invalid operand", out)
	}
	for i := range ins {
		if ins[i].Out != out {
			continue
		}
		r := make([]Instruction, len(ins))
		copy(r, ins)
		r[i] = Unary(Assign, in, out)
		return r, nil
	}
	return nil, errors.Wrapf(ErrUnknownWire, "override of wire %q: no driving instruction", out)
}
