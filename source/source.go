// Package source implements the Source Model & Disassembly Interleave
// (spec.md §4.6): the set of source files known to the debug session, each
// holding an ordered line sequence that may interleave DWARF-derived
// assembly lines between source lines, plus the index mappings between
// the three coordinate systems a source view has to juggle - source line,
// physical (displayed) line, and code address.
//
// Grounded on the teacher's disassembly/symbols/table.go (an
// address-indexed, sorted table with add/remove/search by key) and
// disassembly/disassembly.go's per-line entry list, reworked from a
// 6502 cartridge's single fixed address space into per-file line lists
// addressed by a DWARF-derived range, since the teacher disassembles one
// ROM while this front-end disassembles whichever compilation units GDB's
// `files=[...]` reply names.
package source

import (
	"strings"
)

// Line is one entry in a File's displayed line sequence: either an
// original source line, or (once an interleave has been built) a
// disassembled instruction line inserted after the source line for its
// address.
type Line struct {
	// SourceLine is the 1-based line number in the original file. For an
	// assembly line this is the source line that owns the instruction.
	SourceLine int

	// Text is the line's display text - source text, or a disassembled
	// instruction mnemonic.
	Text string

	// Address is the line's code address, 0 if the line has none (plain
	// source lines with no code generated for them).
	Address uint64

	// Assembly is true for an interleaved disassembly line.
	Assembly bool

	// Hidden lines are skipped by every coordinate mapping; toggling
	// assembly mode off hides rather than deletes interleaved lines, so
	// turning it back on doesn't require rebuilding the interleave.
	Hidden bool
}

// File is the ordered line sequence for one source file, plus its
// resolved path and interleave state.
type File struct {
	Name     string // base name, as GDB reports it in "file="
	Fullname string // resolved path, as GDB reports it in "fullname="

	lines         []Line
	interleaved   bool
	assemblyShown bool
}

// Lines returns every line, in display order, hidden lines included.
func (f *File) Lines() []Line {
	return f.lines
}

// SetSourceText replaces the file's line list with the original source
// text, discarding any interleave. Called once, the first time a file's
// contents are needed for display.
func (f *File) SetSourceText(text string) {
	raw := strings.Split(text, "\n")
	f.lines = make([]Line, len(raw))
	for i, s := range raw {
		f.lines[i] = Line{SourceLine: i + 1, Text: s}
	}
	f.interleaved = false
	f.assemblyShown = false
}

// DWARFLineEntry is one row of a compilation unit's DWARF line table, as
// consulted by BuildInterleave.
type DWARFLineEntry struct {
	SourceLine int
	Address    uint64
}

// Instruction is one disassembled instruction, as produced by a
// Disassembler over a file's address range.
type Instruction struct {
	Address uint64
	Text    string
}

// Disassembler produces the instruction sequence for an address range.
// Implemented by the coprocessor disassembly collaborator; source knows
// nothing about the target architecture's encoding.
type Disassembler interface {
	Disassemble(low, high uint64) ([]Instruction, error)
}

// BuildInterleave constructs the disassembly interleave the first time the
// file is viewed in assembly mode (spec.md §4.6: "Interleave construction
// is deferred"). lineTable is the file's DWARF line-table rows; low/high
// bound the address range the DWARF symbol table gives for the file.
// Each disassembled instruction is inserted after the source line for its
// address.
func (f *File) BuildInterleave(lineTable []DWARFLineEntry, dis Disassembler, low, high uint64) error {
	if f.interleaved {
		f.SetAssemblyShown(true)
		return nil
	}

	insns, err := dis.Disassemble(low, high)
	if err != nil {
		return err
	}

	// addressToSource maps each instruction's address to the source line
	// that owns it, via the DWARF line table's nearest-preceding entry.
	addressToSource := func(addr uint64) int {
		best := 0
		bestAddr := uint64(0)
		for _, e := range lineTable {
			if e.Address <= addr && (best == 0 || e.Address >= bestAddr) {
				best = e.SourceLine
				bestAddr = e.Address
			}
		}
		return best
	}

	out := make([]Line, 0, len(f.lines)+len(insns))
	insnIdx := 0
	for _, ln := range f.lines {
		out = append(out, ln)
		for insnIdx < len(insns) && addressToSource(insns[insnIdx].Address) == ln.SourceLine {
			out = append(out, Line{
				SourceLine: ln.SourceLine,
				Text:       insns[insnIdx].Text,
				Address:    insns[insnIdx].Address,
				Assembly:   true,
			})
			insnIdx++
		}
	}

	// any instructions that never matched a source line (eg. prologue
	// padding) are appended to the end rather than dropped.
	for ; insnIdx < len(insns); insnIdx++ {
		out = append(out, Line{
			SourceLine: 0,
			Text:       insns[insnIdx].Text,
			Address:    insns[insnIdx].Address,
			Assembly:   true,
		})
	}

	f.lines = out
	f.interleaved = true
	f.assemblyShown = true
	return nil
}

// SetAssemblyShown toggles the hidden flag on every interleaved assembly
// line. Per spec.md §4.6: "Toggling assembly off sets the hidden flag on
// all line-number-0 entries rather than deleting them" - generalised here
// to every Assembly line, since a source line can own interleaved
// instructions without itself being line-number-0.
func (f *File) SetAssemblyShown(shown bool) {
	f.assemblyShown = shown
	for i := range f.lines {
		if f.lines[i].Assembly {
			f.lines[i].Hidden = !shown
		}
	}
}

// AssemblyShown reports whether interleaved assembly lines are currently
// visible.
func (f *File) AssemblyShown() bool {
	return f.assemblyShown
}

// SourceToPhysical walks the file's line list, counting only non-hidden
// lines, until a line whose source line equals L is found.
func (f *File) SourceToPhysical(l int) (int, bool) {
	physical := 0
	for _, ln := range f.lines {
		if ln.Hidden {
			continue
		}
		physical++
		if ln.SourceLine == l {
			return physical, true
		}
	}
	return 0, false
}

// PhysicalToSource walks P non-hidden lines and returns the last source
// line seen (assembly lines report the preceding source line, which they
// already carry in SourceLine).
func (f *File) PhysicalToSource(p int) (int, bool) {
	physical := 0
	last := 0
	for _, ln := range f.lines {
		if ln.Hidden {
			continue
		}
		physical++
		last = ln.SourceLine
		if physical == p {
			return last, true
		}
	}
	return 0, false
}

// AddressToPhysical walks the file, tracking the greatest line address
// <= A, and returns that physical position.
func (f *File) AddressToPhysical(addr uint64) (int, bool) {
	physical := 0
	best := 0
	bestAddr := uint64(0)
	found := false
	for _, ln := range f.lines {
		if ln.Hidden {
			continue
		}
		physical++
		if ln.Address != 0 && ln.Address <= addr && (!found || ln.Address >= bestAddr) {
			best = physical
			bestAddr = ln.Address
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}

// PhysicalToAddress walks P non-hidden lines and returns the address
// field (0 if unmapped).
func (f *File) PhysicalToAddress(p int) uint64 {
	physical := 0
	for _, ln := range f.lines {
		if ln.Hidden {
			continue
		}
		physical++
		if physical == p {
			return ln.Address
		}
	}
	return 0
}
