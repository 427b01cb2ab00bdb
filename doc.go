/*
Package wiresim evaluates combinational circuits built from 16 bits wires and
bitwise gates.

A circuit is a list of instructions, each driving one named wire from one or
two operands (literal values or other wires):

	123 -> x
	456 -> y
	x AND y -> d
	x LSHIFT 2 -> f
	NOT x -> h

Instructions may reference wires defined further down the list. Resolve
evaluates them by repeatedly retrying the instructions whose inputs are not
known yet, until every wire has a value:

	ins, err := wiresim.ParseString(src)
	if err != nil {
		// handle error
	}
	c, err := wiresim.Resolve(ins)
	if err != nil {
		// handle error
	}
	d, err := c.Get("d")

Circuits are static and must be loop free: a wire whose value depends on
itself is reported as ErrCycle.

Override builds a new instruction list with one wire pinned to a given
operand, for "what if" runs that leave the original list untouched.
*/
package wiresim
