// Package hover implements the Tooltip / Hover Resolver (spec.md §4.8):
// given a symbol under the pointer in the source view, evaluate it via MI
// and format the result for a tooltip, caching the value until the
// hovered symbol changes.
//
// Grounded on the same issue/await/mark cycle session.stepStopped uses for
// a single outstanding MI command (spec.md §5: "Refresh operations are
// serialised: at most one MI command is outstanding at any time"), cut
// down to the one-command case a hover lookup needs.
package hover

import (
	"strconv"
	"strings"

	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/record"
)

// Sender is the subset of session.Session a Resolver needs to issue its
// evaluate-expression command.
type Sender interface {
	Send(miCommand string) error
}

// Resolver tracks the currently-hovered symbol and its last-evaluated,
// formatted value.
type Resolver struct {
	sender Sender
	store  *record.Store

	symbol  string
	value   string
	have    bool
	pending bool
}

// New returns a Resolver that issues its MI commands through sender and
// reads replies from store.
func New(sender Sender, store *record.Store) *Resolver {
	return &Resolver{sender: sender, store: store}
}

// Hover reports that symbol is now under the pointer. If symbol differs
// from the currently-cached one, the cached value is dropped and a new
// `-data-evaluate-expression` is issued; an empty symbol clears the cache
// without issuing a command. Returns whether a new command was sent.
func (r *Resolver) Hover(symbol string) (bool, error) {
	if symbol == r.symbol && (r.have || r.pending) {
		return false, nil
	}

	r.symbol = symbol
	r.have = false
	r.value = ""
	r.pending = false

	if symbol == "" {
		return false, nil
	}

	if err := r.sender.Send("-data-evaluate-expression " + symbol); err != nil {
		return false, err
	}
	r.store.MarkLatestResult()
	r.pending = true
	return true, nil
}

// Poll checks for the reply to a pending evaluation, formatting and
// caching the value once it arrives. It is a no-op, returning false, if no
// evaluation is outstanding or the reply hasn't arrived yet.
func (r *Resolver) Poll() bool {
	if !r.pending {
		return false
	}

	entry, ok := r.store.GetLastOfClass(mi.Result, 0, mi.Handled)
	if !ok {
		return false
	}

	outcome, body, err := mi.ParseResult(entry.Text)
	r.store.MarkLastResultHandled(false)
	r.pending = false

	if err != nil || outcome != "done" {
		return false
	}

	v, _ := body.Field("value")
	r.value = Format(v.String())
	r.have = true
	return true
}

// Value returns the cached, formatted value and whether one is available
// for the currently-hovered symbol.
func (r *Resolver) Value() (string, bool) {
	return r.value, r.have
}

// Symbol returns the currently-hovered symbol, or "" if none.
func (r *Resolver) Symbol() string {
	return r.symbol
}

// Format reformats raw (a `-data-evaluate-expression` reply's value field)
// as "decimal [0x hex]" when it parses as an integer literal, and returns
// it unchanged otherwise (strings, structs, floats).
func Format(raw string) string {
	trimmed := strings.TrimSpace(raw)

	n, err := strconv.ParseInt(trimmed, 0, 64)
	if err != nil {
		return raw
	}

	if n < 0 {
		return raw
	}

	return strconv.FormatInt(n, 10) + " [0x" + strconv.FormatUint(uint64(n), 16) + "]"
}
