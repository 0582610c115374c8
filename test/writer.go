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

// Package test provides a small set of assertion helpers used throughout the
// rest of the module's test suites. It deliberately has no dependencies
// beyond the standard library and testing package so that it can be imported
// from any other package's tests without risk of import cycles.
package test

import "strings"

// Writer is an io.Writer that accumulates everything written to it, for
// later comparison against an expected string.
type Writer struct {
	b strings.Builder
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

// Clear resets the accumulated contents.
func (w *Writer) Clear() {
	w.b.Reset()
}

// Compare returns true if the accumulated contents equal s exactly.
func (w *Writer) Compare(s string) bool {
	return w.b.String() == s
}

// String returns the accumulated contents.
func (w *Writer) String() string {
	return w.b.String()
}
