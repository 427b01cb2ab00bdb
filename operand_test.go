package wiresim_test

import (
	"testing"

	ws "github.com/db47h/wiresim"
	"github.com/pkg/errors"
)

func TestParseOperand(t *testing.T) {
	td := []struct {
		in  string
		lit bool
		val uint16
		err bool
	}{
		{"0", true, 0, false},
		{"65535", true, 65535, false},
		{"65536", false, 0, true},
		{"-1", false, 0, true},
		{"12ab", false, 0, true},
		{"", false, 0, true},
		{"a", false, 0, false},
		{"lx", false, 0, false},
		{"_w9", false, 0, false},
		{"AND", false, 0, true},
		{"a-b", false, 0, true},
	}
	for _, d := range td {
		o, err := ws.ParseOperand(d.in)
		if d.err {
			if !errors.Is(err, ws.ErrMalformed) {
				t.Errorf("ParseOperand(%q): expected ErrMalformed, got %v", d.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOperand(%q): unexpected error %v", d.in, err)
			continue
		}
		if o.IsLiteral() != d.lit || o.IsRef() == d.lit {
			t.Errorf("ParseOperand(%q): expected literal=%v", d.in, d.lit)
		}
		if d.lit && o.Literal() != d.val {
			t.Errorf("ParseOperand(%q) = %d", d.in, o.Literal())
		}
		if !d.lit && o.Name() != d.in {
			t.Errorf("ParseOperand(%q): got name %q", d.in, o.Name())
		}
		if o.String() != d.in {
			t.Errorf("ParseOperand(%q).String() = %q", d.in, o.String())
		}
	}
}

func TestOperand_Value(t *testing.T) {
	if v, ok := ws.Lit(7).Value(nil); !ok || v != 7 {
		t.Errorf("literal: got %d, %v", v, ok)
	}
	if _, ok := ws.Ref("x").Value(nil); ok {
		t.Error("reference resolved against an empty store")
	}
	c, err := ws.Resolve([]ws.Instruction{ws.Unary(ws.Assign, ws.Lit(9), "x")})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := ws.Ref("x").Value(c.Store()); !ok || v != 9 {
		t.Errorf("reference: got %d, %v", v, ok)
	}
	if _, ok := (ws.Operand{}).Value(c.Store()); ok {
		t.Error("zero operand should not resolve")
	}
}
