package wiresim_test

import (
	"testing"

	ws "github.com/db47h/wiresim"
)

func TestOp_Apply(t *testing.T) {
	td := []struct {
		op   ws.Op
		a, b uint16
		out  uint16
	}{
		{ws.Assign, 42, 0, 42},
		{ws.Not, 0, 0, 65535},
		{ws.Not, 65535, 0, 0},
		{ws.Not, 123, 0, 65412},
		{ws.And, 123, 456, 72},
		{ws.Or, 123, 456, 507},
		{ws.Lshift, 123, 0, 123},
		{ws.Lshift, 123, 2, 492},
		{ws.Lshift, 0x8001, 1, 2},
		{ws.Lshift, 1, 15, 0x8000},
		{ws.Lshift, 1, 16, 0},
		{ws.Lshift, 0xffff, 100, 0},
		{ws.Rshift, 456, 0, 456},
		{ws.Rshift, 456, 2, 114},
		{ws.Rshift, 0x8000, 15, 1},
		{ws.Rshift, 0xffff, 16, 0},
		{ws.Rshift, 0xffff, 65535, 0},
	}
	for _, d := range td {
		if got := d.op.Apply(d.a, d.b); got != d.out {
			t.Errorf("%d %v %d = %d, got %d", d.a, d.op, d.b, d.out, got)
		}
	}
}

func TestOpByName(t *testing.T) {
	td := []struct {
		name  string
		op    ws.Op
		arity int
	}{
		{"", ws.Assign, 1},
		{"NOT", ws.Not, 1},
		{"AND", ws.And, 2},
		{"OR", ws.Or, 2},
		{"LSHIFT", ws.Lshift, 2},
		{"RSHIFT", ws.Rshift, 2},
	}
	for _, d := range td {
		op, ok := ws.OpByName(d.name)
		if !ok || op != d.op {
			t.Errorf("OpByName(%q) = %v, %v; expected %v", d.name, op, ok, d.op)
		}
		if op.Arity() != d.arity {
			t.Errorf("%v: expected arity %d, got %d", op, d.arity, op.Arity())
		}
		if op.Mnemonic() != d.name {
			t.Errorf("%v: expected mnemonic %q, got %q", op, d.name, op.Mnemonic())
		}
	}
	if _, ok := ws.OpByName("XOR"); ok {
		t.Error("XOR should not be a known gate")
	}
	if s := ws.Op(42).String(); s != "Op(42)" {
		t.Errorf("unexpected name %q for invalid op", s)
	}
}
