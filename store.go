// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wiresim

import (
	"sort"
)

// Store holds resolved wire values. Within a resolution pass, each wire is
// written once and never changes afterwards.
//
// A Store is only written by Resolve. The Store of a resolved Circuit is
// read-only and safe for concurrent use.
//
type Store struct {
	m       map[string]uint16
	onWrite func(name string, v uint16)
}

func newStore(size int, onWrite func(string, uint16)) *Store {
	return &Store{m: make(map[string]uint16, size), onWrite: onWrite}
}

func (s *Store) set(name string, v uint16) {
	s.m[name] = v
	if s.onWrite != nil {
		s.onWrite(name, v)
	}
}

// Lookup returns the value of the named wire and whether it has been
// resolved. A nil Store holds no values.
//
func (s *Store) Lookup(name string) (uint16, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.m[name]
	return v, ok
}

// Len returns the number of resolved wires.
//
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Names returns the sorted names of all resolved wires.
//
func (s *Store) Names() []string {
	names := make([]string, 0, s.Len())
	if s != nil {
		for n := range s.m {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the store's content.
//
func (s *Store) Map() map[string]uint16 {
	m := make(map[string]uint16, s.Len())
	if s != nil {
		for k, v := range s.m {
			m[k] = v
		}
	}
	return m
}
