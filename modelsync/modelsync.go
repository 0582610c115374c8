// Package modelsync is the glue between the Refresh Scheduler (package
// refresh, driven from inside package session) and the model package's
// per-model Update/Replace methods: it subscribes to the session's
// record.Store and, whenever a Result record arrives while a refresh is
// outstanding (session.PendingRefresh), parses it and folds it into
// whichever model that refresh bit names.
//
// Grounded on session.RefreshCommand's own doc comment ("the session
// issues the request and clears the bit; the actual MI-reply-to-model
// extraction is the caller's job, since session has no business parsing
// model-shaped replies itself") and on the teacher's debugger/reflect.go
// pattern of a small struct wiring several independent models to one
// event source.
package modelsync

import (
	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/model"
	"github.com/bmdebug/bmdebug/record"
	"github.com/bmdebug/bmdebug/refresh"
)

// PendingRefresher is the subset of session.Session a Sync needs: which
// refresh, if any, is currently awaiting its reply.
type PendingRefresher interface {
	PendingRefresh() (refresh.Bit, bool)
}

// Sync dispatches completed refresh replies into the model package's
// per-model state. The zero value is not usable; construct one with New.
type Sync struct {
	sess PendingRefresher

	breakpoints *model.Breakpoints
	locals      *model.Locals
	watches     *model.Watches
	registers   *model.Registers
	memory      *model.Memory
}

// New returns a Sync wired to store (subscribed immediately) and the
// given models. Any of the model pointers may be nil, in which case
// replies meant for it are parsed and discarded - useful for a front-end
// that doesn't keep, say, a Registers panel.
func New(sess PendingRefresher, store *record.Store, breakpoints *model.Breakpoints, locals *model.Locals, watches *model.Watches, registers *model.Registers, memory *model.Memory) *Sync {
	s := &Sync{
		sess:        sess,
		breakpoints: breakpoints,
		locals:      locals,
		watches:     watches,
		registers:   registers,
		memory:      memory,
	}

	store.Subscribe(s.onEntry)

	return s
}

// onEntry is the record.Store subscriber. It only acts on Result records
// arriving while a refresh is outstanding; anything else (console output,
// exec-state records, a Result that answers some unrelated command the
// interceptor sent directly) is left untouched.
func (s *Sync) onEntry(ent record.Entry) {
	if ent.Class != mi.Result {
		return
	}

	bit, ok := s.sess.PendingRefresh()
	if !ok {
		return
	}

	outcome, body, err := mi.ParseResult(ent.Text)
	if err != nil || outcome != "done" {
		return
	}

	switch bit {
	case refresh.Breakpoints:
		if s.breakpoints != nil {
			if table, ok := body.Field("BreakpointTable"); ok {
				s.breakpoints.Replace(model.ExtractBreakpointTable(table))
			}
		}
	case refresh.Locals:
		if s.locals != nil {
			s.locals.Update(body)
		}
	case refresh.Watches:
		if s.watches != nil {
			s.watches.Update(body)
		}
	case refresh.Registers:
		if s.registers != nil {
			s.registers.Update(body)
		}
	case refresh.Memory:
		if s.memory != nil {
			s.memory.Update(body)
		}
	}
}
