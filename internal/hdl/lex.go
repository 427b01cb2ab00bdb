// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"io"
	"math"
	"sort"
	"strconv"
	"unicode"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Int
	Arrow
	Newline
)

var typeNames = [...]string{
	EOF:     "end of input",
	Raw:     "character",
	Ident:   "identifier",
	Int:     "integer",
	Arrow:   "->",
	Newline: "end of line",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown token"
	}
	return typeNames[t]
}

// eof is returned by Lexer.Next at the end of the input.
const eof rune = -1

// Pos is a 1-based line/column position in the input.
//
type Pos struct {
	Line int
	Col  int
}

// Item is a token emitted by the lexer. Value is an int for Int and a string
// for all other types.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	switch i.Type {
	case Ident:
		return "identifier " + i.Value.(string)
	case Raw:
		return strconv.Quote(i.Value.(string))
	}
	return i.Type.String()
}

// A StateFn is a lexer state. A nil StateFn returns the lexer to its
// initial state.
//
type StateFn func(l *Lexer) StateFn

// Lexer is a state function based lexer for circuit descriptions.
//
type Lexer struct {
	src   []rune
	lines []int // offset of the first rune of each line
	off   int   // offset of the next rune
	start int   // offset of the current token
	state StateFn
	queue []Item
}

// NewLexer reads the whole input and returns a lexer for it.
//
func NewLexer(r io.Reader) (*Lexer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newLexer(string(b)), nil
}

func newLexer(s string) *Lexer {
	l := &Lexer{src: []rune(s), lines: []int{0}}
	for i, r := range l.src {
		if r == '\n' {
			l.lines = append(l.lines, i+1)
		}
	}
	return l
}

// Lex returns the next token.
//
func (l *Lexer) Lex() Item {
	for len(l.queue) == 0 {
		st := l.state
		if st == nil {
			st = lexInit
		}
		l.state = st(l)
	}
	i := l.queue[0]
	l.queue = l.queue[1:]
	return i
}

// Next returns the next rune in the input.
//
func (l *Lexer) Next() rune {
	if l.off >= len(l.src) {
		l.off = len(l.src) + 1
		return eof
	}
	r := l.src[l.off]
	l.off++
	return r
}

// Backup moves back one rune.
//
func (l *Lexer) Backup() {
	if l.off > 0 {
		l.off--
	}
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune {
	if l.off == 0 || l.off > len(l.src) {
		return eof
	}
	return l.src[l.off-1]
}

// AcceptWhile consumes runes for as long as f returns true.
//
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	r := l.Next()
	for r != eof && f(r) {
		r = l.Next()
	}
	l.Backup()
}

// Emit queues a token of type t starting at the current token start.
//
func (l *Lexer) Emit(t Type, v interface{}) {
	l.queue = append(l.queue, Item{Type: t, Pos: l.pos(l.start), Value: v})
	l.Ignore()
}

// Ignore discards the runes consumed since the last token.
//
func (l *Lexer) Ignore() {
	l.start = l.off
	if l.start > len(l.src) {
		l.start = len(l.src)
	}
}

func (l *Lexer) pos(off int) Pos {
	line := sort.Search(len(l.lines), func(i int) bool { return l.lines[i] > off }) - 1
	return Pos{Line: line + 1, Col: off - l.lines[line] + 1}
}

func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func lexInit(l *Lexer) StateFn {
	r := l.Next()
	switch {
	case r == eof:
		return lexEOF
	case r == '\n':
		l.Emit(Newline, "\n")
	case isBlank(r):
		l.AcceptWhile(isBlank)
		l.Ignore()
	case r == '#':
		l.AcceptWhile(func(r rune) bool { return r != '\n' })
		l.Ignore()
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case '0' <= r && r <= '9':
		return lexNumber
	case r == '-':
		if l.Next() == '>' {
			l.Emit(Arrow, "->")
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(Raw, string(r))
	}
	return nil
}

// lexNumber lexes a decimal integer. Values that do not fit in 32 bits
// saturate at math.MaxInt32; the parser rejects anything above 16 bits.
//
func lexNumber(l *Lexer) StateFn {
	i := int(l.Current() - '0')
	r := l.Next()
	for '0' <= r && r <= '9' {
		if i < math.MaxInt32/10 {
			i = i*10 + int(r-'0')
		} else {
			i = math.MaxInt32
		}
		r = l.Next()
	}
	l.Backup()
	if isIdentRune(r) {
		// 12ab is neither a number nor a name
		l.AcceptWhile(isIdentRune)
		l.Emit(Raw, string(l.src[l.start:l.off]))
		return nil
	}
	l.Emit(Int, i)
	return nil
}

func lexIdent(l *Lexer) StateFn {
	l.AcceptWhile(isIdentRune)
	l.Emit(Ident, string(l.src[l.start:l.off]))
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) StateFn {
	l.Ignore()
	l.Emit(EOF, "end of input")
	return lexEOF
}
