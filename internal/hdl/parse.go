// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl implements the lexer and parser for circuit descriptions.
//
// A description holds one gate per line:
//
//	123 -> x
//	NOT x -> h
//	x AND y -> d
//	x LSHIFT 2 -> f
//
// Blank lines are skipped and a '#' starts a comment that runs to the end of
// the line.
//
package hdl

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// Gate mnemonics. An assignment has no mnemonic.
//
var (
	unary  = map[string]bool{"NOT": true}
	binary = map[string]bool{"AND": true, "OR": true, "LSHIFT": true, "RSHIFT": true}
)

// IsKeyword reports whether s is a gate mnemonic. Keywords cannot be used as
// wire names.
//
func IsKeyword(s string) bool {
	return unary[s] || binary[s]
}

// Arg is a gate argument: either an integer literal or a wire name.
//
type Arg struct {
	Pos   Pos
	Name  string
	Value uint16
}

// IsInt returns true if a is an integer literal.
//
func (a Arg) IsInt() bool { return a.Name == "" }

// Stmt is a parsed gate statement.
//
//	Args[0] -> Out                   Op == ""
//	Op Args[0] -> Out                Op == "NOT"
//	Args[0] Op Args[1] -> Out        any binary Op
//
type Stmt struct {
	Pos  Pos
	Op   string
	Args []Arg
	Out  Arg
}

// Parser reads statements from a circuit description.
//
type Parser struct {
	l    *Lexer
	i    Item
	done bool
}

// NewParser returns a parser reading from r.
//
func NewParser(r io.Reader) (*Parser, error) {
	l, err := NewLexer(r)
	if err != nil {
		return nil, errors.Wrap(err, "read circuit")
	}
	return &Parser{l: l}, nil
}

func (p *Parser) next() Item {
	p.i = p.l.Lex()
	return p.i
}

// Next returns the next statement in the input stream.
// It returns nil, nil once the end of the input has been reached.
// Parsing stops at the first error.
//
func (p *Parser) Next() (*Stmt, error) {
	if p.done {
		return nil, nil
	}
	// skip empty lines
	for p.next().Type == Newline {
	}
	if p.i.Type == EOF {
		p.done = true
		return nil, nil
	}
	st, err := p.stmt()
	if err != nil {
		p.done = true
		return nil, err
	}
	return st, nil
}

// All returns all remaining statements.
//
func (p *Parser) All() ([]*Stmt, error) {
	var out []*Stmt
	for {
		st, err := p.Next()
		if err != nil {
			return nil, err
		}
		if st == nil {
			return out, nil
		}
		out = append(out, st)
	}
}

func (p *Parser) stmt() (*Stmt, error) {
	st := &Stmt{Pos: p.i.Pos}

	// collect everything up to the arrow
	var toks []Item
	for p.i.Type != Arrow {
		switch p.i.Type {
		case Ident, Int:
			toks = append(toks, p.i)
		case EOF, Newline:
			return nil, parseError(p.i.Pos, "missing '->'")
		default:
			return nil, parseError(p.i.Pos, "unexpected "+p.i.String())
		}
		p.next()
	}

	var err error
	switch len(toks) {
	case 0:
		return nil, parseError(p.i.Pos, "missing gate input before '->'")
	case 1:
		st.Args = make([]Arg, 1)
		st.Args[0], err = arg(toks[0])
	case 2:
		if !isOp(toks[0], unary) {
			return nil, parseError(toks[0].Pos, "expected NOT, got "+toks[0].String())
		}
		st.Op = toks[0].Value.(string)
		st.Args = make([]Arg, 1)
		st.Args[0], err = arg(toks[1])
	case 3:
		if !isOp(toks[1], binary) {
			return nil, parseError(toks[1].Pos, "expected AND, OR, LSHIFT or RSHIFT, got "+toks[1].String())
		}
		st.Op = toks[1].Value.(string)
		st.Args = make([]Arg, 2)
		if st.Args[0], err = arg(toks[0]); err == nil {
			st.Args[1], err = arg(toks[2])
		}
	default:
		return nil, parseError(toks[3].Pos, "too many gate inputs")
	}
	if err != nil {
		return nil, err
	}

	// output wire, then end of line
	out := p.next()
	if out.Type != Ident || IsKeyword(out.Value.(string)) {
		return nil, parseError(out.Pos, "expected wire name after '->', got "+out.String())
	}
	st.Out = Arg{Pos: out.Pos, Name: out.Value.(string)}
	if t := p.next(); t.Type != Newline && t.Type != EOF {
		return nil, parseError(t.Pos, "expected end of line, got "+t.String())
	}
	return st, nil
}

func isOp(i Item, set map[string]bool) bool {
	return i.Type == Ident && set[i.Value.(string)]
}

func arg(i Item) (Arg, error) {
	if i.Type == Int {
		v := i.Value.(int)
		if v > math.MaxUint16 {
			return Arg{}, parseError(i.Pos, "integer value out of 16 bits range")
		}
		return Arg{Pos: i.Pos, Value: uint16(v)}, nil
	}
	name := i.Value.(string)
	if IsKeyword(name) {
		return Arg{}, parseError(i.Pos, "unexpected keyword "+name)
	}
	return Arg{Pos: i.Pos, Name: name}, nil
}

func parseError(pos Pos, msg string) error {
	return errors.Errorf("line %d, col %d: %s", pos.Line, pos.Col, msg)
}
