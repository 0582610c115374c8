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

package mi_test

import (
	"testing"

	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/test"
)

func TestClassifyLeaders(t *testing.T) {
	cases := []struct {
		line  string
		class mi.Class
		text  string
	}{
		{"^done", mi.Result, "done"},
		{"*stopped,reason=\"breakpoint-hit\"", mi.Exec, "stopped,reason=\"breakpoint-hit\""},
		{"+download,{section=\".text\"}", mi.Status, "download,{section=\".text\"}"},
		{"=thread-group-added,id=\"i1\"", mi.Notice, "thread-group-added,id=\"i1\""},
		{"~\"hello\\n\"", mi.ConsoleOut, "hello\n"},
		{"-break-insert main", mi.MIInput, "break-insert main"},
		{"&\"warning: foo\\n\"", mi.Log, "warning: foo\n"},
		{"@\"semihosting output\\n\"", mi.TargetOut, "semihosting output\n"},
		{"plain text with no leader", mi.Plain, "plain text with no leader"},
	}

	for _, c := range cases {
		l := mi.NewLexer()
		recs := l.Feed([]byte(c.line + "\n"))
		if len(recs) != 1 {
			t.Fatalf("%q: expected 1 record, got %d", c.line, len(recs))
		}
		test.ExpectEquality(t, recs[0].Class, c.class)
		test.ExpectEquality(t, recs[0].Text, c.text)
	}
}

func TestPromptNotStored(t *testing.T) {
	l := mi.NewLexer()
	recs := l.Feed([]byte("^done\n(gdb)\n"))
	test.ExpectEquality(t, len(recs), 1)
	test.ExpectSuccess(t, l.AtPrompt())
}

func TestSplitAcrossReads(t *testing.T) {
	l := mi.NewLexer()
	recs := l.Feed([]byte("^do"))
	test.ExpectEquality(t, len(recs), 0)

	recs = l.Feed([]byte("ne\n"))
	test.ExpectEquality(t, len(recs), 1)
	test.ExpectEquality(t, recs[0].Text, "done")
}

func TestUnescapeEscapes(t *testing.T) {
	test.ExpectEquality(t, mi.Unescape(`"a\nb\tc\r\\\'\""`), "a\nb\tc\r\\'\"")
	test.ExpectEquality(t, mi.Unescape(`"\101\102"`), "AB")
	test.ExpectEquality(t, mi.Unescape(`"\x41\x42"`), "AB")
}

func TestReplaceRule(t *testing.T) {
	l := mi.NewLexer()
	l.AddReplaceRule(func(class mi.Class, flags mi.Flag, text string) (mi.Class, mi.Flag) {
		if class == mi.Log {
			flags |= mi.Script
		}
		return class, flags
	})

	recs := l.Feed([]byte("&\"echoed\\n\"\n"))
	test.ExpectEquality(t, len(recs), 1)
	test.ExpectSuccess(t, recs[0].Flags&mi.Script != 0)
}
