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

// Package record implements the append-only record store that every
// model in the front-end reads from. It is written to only by the MI
// lexer's output and the command-submit path; everything else only reads
// it. Since the whole front-end runs on a single goroutine (see package
// session), the store needs no internal locking.
package record

import "github.com/bmdebug/bmdebug/mi"

// Entry is one stored record: the classified mi.Record plus its position
// in the store.
type Entry struct {
	Pos   int
	Class mi.Class
	Flags mi.Flag
	Text  string
}

// Subscriber is notified of every record as it is appended.
type Subscriber func(Entry)

// Store is an append-only ordered sequence of records.
type Store struct {
	entries []Entry
	subs    []Subscriber

	markResult int // position of latest_result(), -1 if none yet
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{markResult: -1}
}

// Subscribe registers fn to be called with every record as it is
// appended, including ones appended before a later call to
// MarkLastResultHandled.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// Append adds a new record at the end of the store.
func (s *Store) Append(class mi.Class, flags mi.Flag, text string) Entry {
	e := Entry{Pos: len(s.entries), Class: class, Flags: flags, Text: text}
	s.entries = append(s.entries, e)
	for _, sub := range s.subs {
		sub(e)
	}
	return e
}

// InsertAfter inserts a new record immediately after pos, shifting every
// later record's Pos up by one. Used sparingly - e.g. to interleave a
// synthetic record describing a locally-detected condition between two
// records that actually arrived from GDB.
func (s *Store) InsertAfter(pos int, class mi.Class, flags mi.Flag, text string) Entry {
	if pos < 0 || pos >= len(s.entries) {
		return s.Append(class, flags, text)
	}

	e := Entry{Pos: pos + 1, Class: class, Flags: flags, Text: text}
	s.entries = append(s.entries, Entry{})
	copy(s.entries[pos+2:], s.entries[pos+1:len(s.entries)-1])
	s.entries[pos+1] = e

	for i := pos + 2; i < len(s.entries); i++ {
		s.entries[i].Pos = i
	}

	for _, sub := range s.subs {
		sub(e)
	}

	return e
}

// GetLast performs a reverse scan and returns the most recent record
// whose flags contain every bit in include and none in exclude. ok is
// false if no such record exists.
func (s *Store) GetLast(include, exclude mi.Flag) (Entry, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.Flags&include == include && e.Flags&exclude == 0 {
			return e, true
		}
	}
	return Entry{}, false
}

// GetLastOfClass is GetLast scoped additionally to a single mi.Class.
func (s *Store) GetLastOfClass(class mi.Class, include, exclude mi.Flag) (Entry, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.Class != class {
			continue
		}
		if e.Flags&include == include && e.Flags&exclude == 0 {
			return e, true
		}
	}
	return Entry{}, false
}

// MarkLastResultHandled sets the Handled bit on the most recent Result
// record. If all is true, every unhandled Result record is marked
// instead of just the most recent.
func (s *Store) MarkLastResultHandled(all bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Class != mi.Result {
			continue
		}
		if s.entries[i].Flags&mi.Handled != 0 {
			if !all {
				break
			}
			continue
		}
		s.entries[i].Flags |= mi.Handled
		if !all {
			break
		}
	}
}

// MarkLatestResult remembers the position of the most recent Result
// record as the cursor, for later use by Between.
func (s *Store) MarkLatestResult() {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Class == mi.Result {
			s.markResult = i
			return
		}
	}
	s.markResult = -1
}

// Between returns every record strictly after the cursor set by
// MarkLatestResult and up to (but not including) the next Result record,
// used to extract the console output lines produced by a scripted
// monitor command between two result marks.
func (s *Store) Between() []Entry {
	start := s.markResult + 1
	var out []Entry
	for i := start; i < len(s.entries); i++ {
		if s.entries[i].Class == mi.Result {
			break
		}
		out = append(out, s.entries[i])
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns every stored record, oldest first. The caller must not
// mutate the returned slice.
func (s *Store) All() []Entry {
	return s.entries
}
