// Package model holds the five data models populated by MI replies:
// breakpoints, watches, locals, registers and memory (spec.md §4.7). Each
// model owns its own "changed since last stop" bookkeeping, grounded on
// the teacher's slice-plus-drop-by-index collections (debugger/breakpoints.go,
// debugger/watches.go) and the in-scope/changed marking idiom in
// debugger/halt_watches.go, reworked from VCS memory-watch semantics to
// GDB/MI variable-object and register-table semantics.
package model

import (
	"fmt"
	"strconv"

	"github.com/bmdebug/bmdebug/mi"
)

// Breakpoint mirrors one row of a GDB BreakpointTable reply.
type Breakpoint struct {
	Number   int
	Kind     string // "breakpoint", "hw breakpoint", "watchpoint", ...
	Keep     bool
	Enabled  bool
	Address  string
	File     string
	Line     int
	Function string

	// AtFunctionEntry is true when the breakpoint's original-location
	// equals its Function - ie. it was set on the function itself rather
	// than a specific file:line.
	AtFunctionEntry bool
}

func (b Breakpoint) String() string {
	loc := b.Address
	if b.File != "" {
		loc = fmt.Sprintf("%s:%d", b.File, b.Line)
	}
	state := "enabled"
	if !b.Enabled {
		state = "disabled"
	}
	return fmt.Sprintf("#%d %s at %s (%s)", b.Number, b.Kind, loc, state)
}

// Breakpoints is the Breakpoint Model: the most recently received
// BreakpointTable, replaced wholesale on every -break-list/-break-insert
// reply.
type Breakpoints struct {
	rows []Breakpoint
}

// Replace discards the existing table and installs rows extracted from a
// fresh BreakpointTable reply.
func (m *Breakpoints) Replace(rows []Breakpoint) {
	m.rows = rows
}

// All returns every known breakpoint, in GDB's reported order.
func (m *Breakpoints) All() []Breakpoint {
	return m.rows
}

// ByNumber finds a breakpoint by its GDB-assigned number.
func (m *Breakpoints) ByNumber(number int) (Breakpoint, bool) {
	for _, b := range m.rows {
		if b.Number == number {
			return b, true
		}
	}
	return Breakpoint{}, false
}

// ByAddress finds every breakpoint set on the given disassembly address,
// used by the source/disassembly view to decorate a line with a break
// marker.
func (m *Breakpoints) ByAddress(address string) []Breakpoint {
	var out []Breakpoint
	for _, b := range m.rows {
		if b.Address == address {
			out = append(out, b)
		}
	}
	return out
}

// ExtractBreakpointTable parses a BreakpointTable Value (the reply to
// -break-list) into rows. A value with no "body" field yields nil, so a
// single bkpt={...} payload of -break-insert goes through ExtractBreakpoint.
// Per spec.md §4.7: "each entry yields number, kind, keep, enabled,
// address, optional file/line, optional function; original-location equal
// to function name flags 'breakpoint at function entry'."
func ExtractBreakpointTable(table mi.Value) []Breakpoint {
	body, ok := table.Field("body")
	if !ok {
		return nil
	}

	rows := make([]Breakpoint, 0, len(body.List))
	for _, elem := range body.List {
		bkpt, ok := elem.Field("bkpt")
		if !ok {
			// some replies put each row directly in the list rather
			// than wrapped in a "bkpt" key (eg. the body=[bkpt={...}]
			// shape already unwrapped one level higher up).
			bkpt = elem
		}
		rows = append(rows, extractBreakpoint(bkpt))
	}
	return rows
}

// ExtractBreakpoint parses a single bkpt={...} tuple, as returned inline by
// -break-insert's reply.
func ExtractBreakpoint(bkpt mi.Value) Breakpoint {
	return extractBreakpoint(bkpt)
}

func extractBreakpoint(bkpt mi.Value) Breakpoint {
	var b Breakpoint

	if f, ok := bkpt.Field("number"); ok {
		b.Number, _ = strconv.Atoi(f.String())
	}
	if f, ok := bkpt.Field("type"); ok {
		b.Kind = f.String()
	}
	if f, ok := bkpt.Field("disp"); ok {
		b.Keep = f.String() == "keep"
	}
	if f, ok := bkpt.Field("enabled"); ok {
		b.Enabled = f.String() == "y"
	}
	if f, ok := bkpt.Field("addr"); ok {
		b.Address = f.String()
	}
	if f, ok := bkpt.Field("file"); ok {
		b.File = f.String()
	}
	if f, ok := bkpt.Field("line"); ok {
		b.Line, _ = strconv.Atoi(f.String())
	}
	if f, ok := bkpt.Field("func"); ok {
		b.Function = f.String()
	}
	if f, ok := bkpt.Field("original-location"); ok {
		b.AtFunctionEntry = b.Function != "" && f.String() == b.Function
	}

	return b
}
