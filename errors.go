// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wiresim

import (
	"strings"

	"github.com/pkg/errors"
)

// Error kinds. Errors returned by this package wrap one of these and can be
// tested with errors.Is.
//
var (
	// ErrMalformed reports an instruction that does not match the gate
	// grammar, or that drives a wire already driven by another instruction.
	ErrMalformed = errors.New("malformed instruction")
	// ErrUnknownWire reports a query or override naming a wire that no
	// instruction drives.
	ErrUnknownWire = errors.New("unknown wire")
	// ErrCycle reports a circuit that cannot be fully resolved.
	ErrCycle = errors.New("unresolvable circuit")
)

// CycleError is returned by Resolve when a whole pass over the pending
// instructions executes none of them.
//
// Pending lists the wires that could not be computed. Missing lists the
// wires referenced by pending instructions that no instruction drives; if
// it is empty, the pending wires form at least one dependency loop.
//
type CycleError struct {
	Pending []string
	Missing []string
}

func (e *CycleError) Error() string {
	var b strings.Builder
	b.WriteString(ErrCycle.Error())
	b.WriteString(": pending ")
	b.WriteString(strings.Join(e.Pending, ", "))
	if len(e.Missing) > 0 {
		b.WriteString("; undriven ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	return b.String()
}

// Is makes errors.Is(err, ErrCycle) true for a *CycleError.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

func malformed(i int, in Instruction, msg string) error {
	return errors.Wrapf(ErrMalformed, "instruction %d (%s): %s", i, in, msg)
}
