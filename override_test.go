package wiresim_test

import (
	"math/rand"
	"testing"

	ws "github.com/db47h/wiresim"
	"github.com/db47h/wiresim/wiretest"
	"github.com/pkg/errors"
)

func TestOverride_feedback(t *testing.T) {
	ins := mustParse(t, `
b AND c -> a
x LSHIFT 1 -> b
44 -> c
x -> d
13 -> x
`)
	c, err := ws.Resolve(ins)
	if err != nil {
		t.Fatal(err)
	}
	a, err := c.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if a != 8 {
		t.Fatalf("expected a = 8, got %d", a)
	}

	ins2, err := ws.Override(ins, "b", ws.Lit(a))
	if err != nil {
		t.Fatal(err)
	}
	c2, err := ws.Resolve(ins2)
	if err != nil {
		t.Fatal(err)
	}
	wiretest.CompareStores(t, map[string]uint16{
		"a": 8, "b": 8, "c": 44, "d": 13, "x": 13,
	}, c2.Store())

	// the original list is unchanged
	if got := ins[1].String(); got != "x LSHIFT 1 -> b" {
		t.Errorf("original instruction modified: %s", got)
	}
	if got := ins2[1].String(); got != "8 -> b" {
		t.Errorf("expected override 8 -> b, got %s", got)
	}
}

// Overriding a wire only changes the wire itself and the wires that depend
// on it.
func TestOverride_dependents(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		ins := wiretest.RandomCircuit(rnd, 40)
		c, err := ws.Resolve(ins)
		if err != nil {
			t.Fatal(err)
		}
		target := ins[rnd.Intn(len(ins))].Out
		old, _ := c.Get(target)
		ins2, err := ws.Override(ins, target, ws.Lit(^old))
		if err != nil {
			t.Fatal(err)
		}
		c2, err := ws.Resolve(ins2)
		if err != nil {
			t.Fatal(err)
		}
		if v, _ := c2.Get(target); v != ^old {
			t.Fatalf("%s: expected %d, got %d", target, ^old, v)
		}
		deps := wiretest.Dependents(ins, target)
		for _, name := range c.Store().Names() {
			if name == target || deps[name] {
				continue
			}
			v1, _ := c.Get(name)
			v2, _ := c2.Get(name)
			if v1 != v2 {
				t.Fatalf("wire %s does not depend on %s but changed from %d to %d", name, target, v1, v2)
			}
		}
	}
}

func TestOverride_errors(t *testing.T) {
	ins := mustParse(t, "1 -> a")
	if _, err := ws.Override(ins, "b", ws.Lit(1)); !errors.Is(err, ws.ErrUnknownWire) {
		t.Errorf("expected ErrUnknownWire, got %v", err)
	}
	if _, err := ws.Override(ins, "a", ws.Operand{}); !errors.Is(err, ws.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
	// overriding with a reference is fine too, as long as it does not loop.
	ins2, err := ws.Override(mustParse(t, "1 -> a\n2 -> b"), "b", ws.Ref("a"))
	if err != nil {
		t.Fatal(err)
	}
	c, err := ws.Resolve(ins2)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := c.Get("b"); v != 1 {
		t.Errorf("expected b = 1, got %d", v)
	}
}
