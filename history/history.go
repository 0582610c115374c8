// Package history implements the command history module: a de-duplicated,
// walkable, searchable sequence of previously issued user commands.
//
// Grounded on the teacher's colorterm.ColorTerminal command-history walk
// (commandHistory/historyIdx/liveHistory in terminal/colorterm/input.go),
// generalised out of the terminal so that it can be persisted to the global
// config's recent-command list and searched independently of any one
// terminal implementation.
package history

import "strings"

// maxEntries bounds the in-memory list. spec.md §6 names the same bound for
// the persisted recent-command list so the two stay interchangeable.
const maxEntries = 50

// List is a de-duplicated, cursor-walkable command history.
//
// Entries are kept oldest-first. Add() refuses to append an entry equal to
// the current tail: "history after add(h) never contains two consecutive
// equal entries; after add(h); add(h) the list grows by exactly one."
type List struct {
	entries []string
	cursor  int // index into entries; len(entries) means "not walking"
	live    string
}

// NewList returns an empty history, optionally seeded (oldest-first) from a
// persisted recent-command list.
func NewList(seed []string) *List {
	l := &List{}
	for _, s := range seed {
		l.Add(s)
	}
	return l
}

// Add appends cmd to the history, unless it equals the current tail entry.
// It also resets the walk cursor to the end.
func (l *List) Add(cmd string) {
	if cmd == "" {
		return
	}

	if n := len(l.entries); n > 0 && l.entries[n-1] == cmd {
		l.cursor = len(l.entries)
		return
	}

	l.entries = append(l.entries, cmd)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
	l.cursor = len(l.entries)
}

// Entries returns the full history, oldest-first. The caller must not
// modify the returned slice.
func (l *List) Entries() []string {
	return l.entries
}

// Prev walks the cursor backward and returns the entry it lands on. The
// first call after Add()/Reset() stashes current as the "live" line so that
// Next() can return to it once the walk reaches the end again. Calling Prev
// repeatedly at the head of the list is a no-op and returns the oldest entry.
func (l *List) Prev(current string) (string, bool) {
	if len(l.entries) == 0 {
		return "", false
	}

	if l.cursor == len(l.entries) {
		l.live = current
	}

	if l.cursor > 0 {
		l.cursor--
	}

	return l.entries[l.cursor], true
}

// Next walks the cursor forward. Once it passes the newest history entry it
// returns the stashed live line (the text the user had typed before they
// started walking).
func (l *List) Next() (string, bool) {
	if len(l.entries) == 0 || l.cursor >= len(l.entries) {
		return "", false
	}

	l.cursor++
	if l.cursor == len(l.entries) {
		return l.live, true
	}

	return l.entries[l.cursor], true
}

// Reset returns the walk cursor to the end of the history, as though no
// walk had ever happened. Called whenever the user edits the input line
// directly rather than via Prev/Next.
func (l *List) Reset() {
	l.cursor = len(l.entries)
	l.live = ""
}

// Search returns every entry, newest-first, containing prefix as a
// case-insensitive substring. Empty prefix matches everything.
func (l *List) Search(prefix string) []string {
	var out []string
	prefix = strings.ToLower(prefix)
	for i := len(l.entries) - 1; i >= 0; i-- {
		if strings.Contains(strings.ToLower(l.entries[i]), prefix) {
			out = append(out, l.entries[i])
		}
	}
	return out
}
