// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wiresim

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// An Option configures a call to Resolve.
//
type Option func(*resolver)

// WithLogger sets the logger used to trace resolution passes at debug
// level. The default is a no-op logger.
//
func WithLogger(l *zap.Logger) Option {
	return func(r *resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// OnWrite registers a function called each time a wire value is stored.
//
func OnWrite(f func(name string, v uint16)) Option {
	return func(r *resolver) { r.onWrite = f }
}

type resolver struct {
	log     *zap.Logger
	onWrite func(string, uint16)
}

// Circuit is a fully resolved circuit.
//
type Circuit struct {
	s      *Store
	passes int
}

// Resolve computes the value of every wire driven by the given instructions.
//
// Instructions can be in any order. Resolve works through them as a FIFO
// queue: an instruction whose inputs are all known is executed and dropped,
// any other goes back to the end of the queue. Each instruction executes
// exactly once and the result does not depend on the input order.
//
// If a whole pass over the queue executes no instruction, the remaining
// ones can never be executed and Resolve returns a *CycleError (which
// matches ErrCycle). Instructions that do not validate, or that drive a wire
// already driven by another instruction, are reported with ErrMalformed
// before anything is executed.
//
// The instruction slice is not modified.
//
func Resolve(ins []Instruction, opts ...Option) (*Circuit, error) {
	r := resolver{log: zap.NewNop()}
	for _, o := range opts {
		o(&r)
	}
	if err := validate(ins); err != nil {
		return nil, err
	}
	return r.run(ins)
}

func validate(ins []Instruction) error {
	drivers := make(map[string]int, len(ins))
	for i, in := range ins {
		if msg := in.check(); msg != "" {
			return malformed(i, in, msg)
		}
		if j, ok := drivers[in.Out]; ok {
			return malformed(i, in, "wire "+in.Out+" already driven by instruction "+strconv.Itoa(j))
		}
		drivers[in.Out] = i
	}
	return nil
}

func (r *resolver) run(ins []Instruction) (*Circuit, error) {
	s := newStore(len(ins), r.onWrite)

	queue := make([]int, len(ins))
	for i := range queue {
		queue[i] = i
	}

	pass := 0
	for len(queue) > 0 {
		pass++
		// Filtering in place keeps the FIFO order: requeued instructions
		// come back in the order they were popped.
		next := queue[:0]
		for _, i := range queue {
			in := &ins[i]
			v, ok := in.Eval(s)
			if !ok {
				next = append(next, i)
				continue
			}
			s.set(in.Out, v)
		}
		done := len(queue) - len(next)
		r.log.Debug("resolution pass",
			zap.Int("pass", pass),
			zap.Int("executed", done),
			zap.Int("pending", len(next)))
		if done == 0 {
			err := stuck(ins, next, s)
			r.log.Debug("resolution stalled", zap.Error(err))
			return nil, errors.WithStack(err)
		}
		queue = next
	}

	r.log.Debug("circuit resolved", zap.Int("wires", s.Len()), zap.Int("passes", pass))
	return &Circuit{s: s, passes: pass}, nil
}

func stuck(ins []Instruction, pending []int, s *Store) *CycleError {
	driven := make(map[string]bool, len(ins))
	for i := range ins {
		driven[ins[i].Out] = true
	}
	e := &CycleError{}
	missing := make(map[string]bool)
	for _, i := range pending {
		e.Pending = append(e.Pending, ins[i].Out)
		for _, ref := range ins[i].Refs() {
			if _, ok := s.Lookup(ref); !ok && !driven[ref] {
				missing[ref] = true
			}
		}
	}
	for n := range missing {
		e.Missing = append(e.Missing, n)
	}
	sort.Strings(e.Pending)
	sort.Strings(e.Missing)
	return e
}

// Get returns the value of the named wire. If name is a decimal integer, its
// value is returned as is.
//
func (c *Circuit) Get(name string) (uint16, error) {
	if v, err := strconv.ParseUint(name, 10, 16); err == nil {
		return uint16(v), nil
	}
	if v, ok := c.s.Lookup(name); ok {
		return v, nil
	}
	return 0, errors.Wrapf(ErrUnknownWire, "wire %q", name)
}

// Store returns the circuit's wire values.
//
func (c *Circuit) Store() *Store { return c.s }

// Passes returns the number of passes over the instruction queue it took to
// resolve the circuit.
//
func (c *Circuit) Passes() int { return c.passes }
