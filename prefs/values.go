// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Value is the type used to pass values into and out of a pref entry. It is
// an alias for interface{} rather than a concrete type because individual
// pref types (Bool, Int, Float, String, Generic) each interpret it
// differently.
type Value interface{}

// entry is satisfied by every pref value type and is what Disk actually
// stores against a key.
type entry interface {
	loadString(s string) error
	saveString() string
}

// Bool is a boolean preference value.
type Bool struct {
	crit sync.Mutex
	v    bool
}

// Set accepts either a bool directly, or a string which is considered true
// only if it case-insensitively equals "true". Unrecognised string values
// are treated as false rather than as an error.
func (b *Bool) Set(v interface{}) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	switch t := v.(type) {
	case bool:
		b.v = t
	case string:
		b.v = strings.EqualFold(t, "true")
	default:
		return fmt.Errorf("prefs: unsupported type for bool preference: %T", v)
	}
	return nil
}

// Get returns the current value.
func (b *Bool) Get() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.v
}

// String implements fmt.Stringer.
func (b *Bool) String() string {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.v {
		return "true"
	}
	return "false"
}

func (b *Bool) loadString(s string) error {
	return b.Set(s)
}

func (b *Bool) saveString() string {
	return b.String()
}

// Int is an integer preference value.
type Int struct {
	crit sync.Mutex
	v    int
}

// Set accepts either an int directly, or a string that parses as an
// integer. Any other type, or a string that fails to parse, is an error.
func (n *Int) Set(v interface{}) error {
	n.crit.Lock()
	defer n.crit.Unlock()

	switch t := v.(type) {
	case int:
		n.v = t
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return fmt.Errorf("prefs: invalid int preference value: %s", t)
		}
		n.v = i
	default:
		return fmt.Errorf("prefs: unsupported type for int preference: %T", v)
	}
	return nil
}

// Get returns the current value.
func (n *Int) Get() int {
	n.crit.Lock()
	defer n.crit.Unlock()
	return n.v
}

// String implements fmt.Stringer.
func (n *Int) String() string {
	n.crit.Lock()
	defer n.crit.Unlock()
	return strconv.Itoa(n.v)
}

func (n *Int) loadString(s string) error {
	return n.Set(s)
}

func (n *Int) saveString() string {
	return n.String()
}

// Float is a floating point preference value.
type Float struct {
	crit sync.Mutex
	v    float64
}

// Set accepts either a float64 directly, or a string that parses as a
// float. Any other type, or a string that fails to parse, is an error.
func (f *Float) Set(v interface{}) error {
	f.crit.Lock()
	defer f.crit.Unlock()

	switch t := v.(type) {
	case float64:
		f.v = t
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return fmt.Errorf("prefs: invalid float preference value: %s", t)
		}
		f.v = n
	default:
		return fmt.Errorf("prefs: unsupported type for float preference: %T", v)
	}
	return nil
}

// Get returns the current value.
func (f *Float) Get() float64 {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.v
}

// String implements fmt.Stringer.
func (f *Float) String() string {
	f.crit.Lock()
	defer f.crit.Unlock()
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

func (f *Float) loadString(s string) error {
	return f.Set(s)
}

func (f *Float) saveString() string {
	return f.String()
}

// String is a string preference value, with an optional maximum length.
type String struct {
	crit   sync.Mutex
	v      string
	maxLen int
}

// Set accepts a string value, cropping it to the current maximum length if
// one has been set with SetMaxLen.
func (s *String) Set(v interface{}) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	t, ok := v.(string)
	if !ok {
		return fmt.Errorf("prefs: unsupported type for string preference: %T", v)
	}
	if s.maxLen > 0 && len(t) > s.maxLen {
		t = t[:s.maxLen]
	}
	s.v = t
	return nil
}

// SetMaxLen sets the maximum length of the string, immediately cropping the
// current value if necessary. A length of zero removes the limit without
// restoring any previously cropped content.
func (s *String) SetMaxLen(n int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.maxLen = n
	if n > 0 && len(s.v) > n {
		s.v = s.v[:n]
	}
}

// Get returns the current value.
func (s *String) Get() string {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.v
}

// String implements fmt.Stringer.
func (s *String) String() string {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.v
}

func (s *String) loadString(v string) error {
	return s.Set(v)
}

func (s *String) saveString() string {
	return s.String()
}

// Generic wraps a pair of caller-supplied load/save functions, for
// preference values whose underlying representation doesn't fit Bool, Int,
// Float or String.
type Generic struct {
	load func(Value) error
	save func() Value
}

// NewGeneric returns a Generic pref backed by the given load/save
// functions. load is called with the raw string read from disk; save is
// called to obtain the value to be written to disk.
func NewGeneric(load func(Value) error, save func() Value) *Generic {
	return &Generic{load: load, save: save}
}

func (g *Generic) loadString(s string) error {
	return g.load(s)
}

func (g *Generic) saveString() string {
	return fmt.Sprintf("%v", g.save())
}
