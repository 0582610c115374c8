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

// Package modalflag implements a small command-line parser that supports
// flags, and a single level of named "sub-modes" (think "git remote add"
// where "remote" and "add" are sub-modes). It is used instead of the
// standard library's flag package directly so that the program can accept
// a mode path ahead of its flags and produce a consistent -help layout
// across every mode.
package modalflag

import (
	"flag"
	"fmt"
	"io"
)

// ParseResult indicates what the caller should do after calling Parse().
type ParseResult int

const (
	// ParseContinue indicates that the program should continue as normal.
	ParseContinue ParseResult = iota

	// ParseHelp indicates that help text has been written to Modes.Output
	// and the program should exit without error.
	ParseHelp
)

// Modes parses command line flags, optionally scoped to one of a fixed set
// of named sub-modes.
type Modes struct {
	// Output receives -help text. Required.
	Output io.Writer

	args []string

	flags    *flag.FlagSet
	subModes []string
	defMode  string

	mode string
	path string
}

// NewArgs primes Modes with the raw, unparsed argument list (typically
// os.Args[1:]).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// AddBool defines a boolean flag, returning a pointer to the value it will
// be stored in.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString defines a string flag, returning a pointer to the value it
// will be stored in.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt defines an int flag, returning a pointer to the value it will be
// stored in.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat defines a float64 flag, returning a pointer to the value it
// will be stored in.
func (md *Modes) AddFloat(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddSubModes declares the set of valid sub-mode names at this level. The
// first name is the default, selected when no mode is given on the command
// line.
func (md *Modes) AddSubModes(names ...string) {
	md.subModes = append(md.subModes, names...)
	if len(names) > 0 {
		md.defMode = names[0]
	}
}

// Mode returns the sub-mode selected by the most recent Parse(), or the
// empty string if this level of Modes has no sub-modes.
func (md *Modes) Mode() string {
	return md.mode
}

// Path returns the full mode path (this mode appended to any parent
// path) selected by the most recent Parse().
func (md *Modes) Path() string {
	return md.path
}

// RemainingArgs returns the arguments left over after flags (and, if
// present, a sub-mode) have been consumed.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

func isHelp(args []string) bool {
	for _, a := range args {
		if a == "-help" || a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}

// Parse consumes leading flags (and, if sub-modes have been declared, the
// next positional argument as the mode name) from the argument list.
func (md *Modes) Parse() (ParseResult, error) {
	if isHelp(md.args) {
		md.writeHelp()
		return ParseHelp, nil
	}

	if err := md.flags.Parse(md.args); err != nil {
		return ParseContinue, err
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	remaining := md.flags.Args()
	if len(remaining) == 0 {
		md.mode = md.defMode
	} else {
		candidate := remaining[0]
		found := false
		for _, m := range md.subModes {
			if m == candidate {
				found = true
				break
			}
		}
		if found {
			md.mode = candidate
			md.flags.Parse(remaining[1:])
		} else {
			md.mode = md.defMode
		}
	}

	md.path = md.mode

	return ParseContinue, nil
}

func (md *Modes) writeHelp() {
	hasFlags := false
	md.flags.VisitAll(func(*flag.Flag) { hasFlags = true })

	if !hasFlags && len(md.subModes) == 0 {
		fmt.Fprint(md.Output, "No help available\n")
		return
	}

	fmt.Fprint(md.Output, "Usage:\n")

	if hasFlags {
		md.flags.SetOutput(md.Output)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)
	}

	if len(md.subModes) > 0 {
		if hasFlags {
			fmt.Fprint(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", joinModes(md.subModes))
		fmt.Fprintf(md.Output, "    default: %s\n", md.defMode)
	}
}

func joinModes(modes []string) string {
	s := ""
	for i, m := range modes {
		if i > 0 {
			s += ", "
		}
		s += m
	}
	return s
}
