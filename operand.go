// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wiresim

import (
	"strconv"
	"unicode"

	"github.com/db47h/wiresim/internal/hdl"
	"github.com/pkg/errors"
)

type operandKind uint8

const (
	kindNone operandKind = iota
	kindLiteral
	kindRef
)

// An Operand is a gate input: either an immediate 16 bits value or a
// reference to the output of another gate. The zero Operand is invalid.
//
type Operand struct {
	kind  operandKind
	value uint16
	name  string
}

// Lit returns a literal operand.
//
func Lit(v uint16) Operand {
	return Operand{kind: kindLiteral, value: v}
}

// Ref returns an operand referencing the named wire.
//
func Ref(name string) Operand {
	return Operand{kind: kindRef, name: name}
}

// ParseOperand returns a literal operand if s is a decimal integer in the
// range [0, 65535], or a wire reference if s is a valid wire name.
//
func ParseOperand(s string) (Operand, error) {
	if s == "" {
		return Operand{}, errors.Wrap(ErrMalformed, "empty operand")
	}
	if '0' <= s[0] && s[0] <= '9' {
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return Operand{}, errors.Wrapf(ErrMalformed, "invalid literal %q", s)
		}
		return Lit(uint16(v)), nil
	}
	if !IsWireName(s) {
		return Operand{}, errors.Wrapf(ErrMalformed, "invalid wire name %q", s)
	}
	return Ref(s), nil
}

// IsWireName returns true if s can be used as a wire name: a letter or
// underscore followed by letters, digits or underscores, and not one of
// the gate mnemonics.
//
func IsWireName(s string) bool {
	if s == "" || hdl.IsKeyword(s) {
		return false
	}
	for i, r := range s {
		if !(unicode.IsLetter(r) || r == '_' || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// IsLiteral returns true if o is a literal value.
func (o Operand) IsLiteral() bool { return o.kind == kindLiteral }

// IsRef returns true if o references a wire.
func (o Operand) IsRef() bool { return o.kind == kindRef }

// Literal returns the value of a literal operand, 0 otherwise.
func (o Operand) Literal() uint16 { return o.value }

// Name returns the wire name of a reference, "" otherwise.
func (o Operand) Name() string { return o.name }

func (o Operand) valid() bool {
	return o.kind == kindLiteral || o.kind == kindRef && o.name != ""
}

// Value returns the value of o. For a reference, it reports false if the
// referenced wire has no value in s yet.
//
func (o Operand) Value(s *Store) (uint16, bool) {
	switch o.kind {
	case kindLiteral:
		return o.value, true
	case kindRef:
		return s.Lookup(o.name)
	}
	return 0, false
}

func (o Operand) String() string {
	switch o.kind {
	case kindLiteral:
		return strconv.Itoa(int(o.value))
	case kindRef:
		return o.name
	}
	return "<nil>"
}
