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

package test

import (
	"math"
	"testing"
)

// truthy mimics the way the debugger's own command results are tested: a
// non-nil error or a false boolean is a failure; anything else, including a
// nil error, is a success.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return t
	case error:
		return t == nil
	}
	return true
}

// ExpectFailure fails the test if v is truthy.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if truthy(v) {
		t.Errorf("expected failure, got %v", v)
	}
}

// ExpectSuccess fails the test if v is falsy.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !truthy(v) {
		t.Errorf("expected success, got %v", v)
	}
}

// ExpectEquality fails the test if a and b are not equal.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if a != b {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality fails the test if a and b are equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if a == b {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate fails the test if a and b differ by more than tolerance.
func ExpectApproximate(t *testing.T, a, b, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("expected approximate equality: %v !~ %v (tolerance %v)", a, b, tolerance)
	}
}

// Equate fails the test if a and b are not equal, and reports whether they
// were equal.
func Equate(t *testing.T, a, b interface{}) bool {
	t.Helper()
	if a != b {
		t.Errorf("expected equality: %v != %v", a, b)
		return false
	}
	return true
}

// ExpectedSuccess is like ExpectSuccess but reports whether v was truthy, so
// that callers can gate follow-on assertions that would otherwise panic on a
// nil/zero value.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	ok := truthy(v)
	if !ok {
		t.Errorf("expected success, got %v", v)
	}
	return ok
}

// ExpectedFailure is like ExpectFailure but reports whether v was falsy.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	ok := !truthy(v)
	if !ok {
		t.Errorf("expected failure, got %v", v)
	}
	return ok
}
