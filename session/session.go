// Package session implements the State Machine (spec.md §4.4): the single
// finite-state automaton that drives GDB from process launch through the
// probe-attach chain and then cycles between the Running and Stopped
// states for the lifetime of the debug session. It also owns the single
// GDB stdin writer (spec.md §5: "No other component may write to GDB's
// stdin directly; only the state machine and the command-submit path do
// so") and the per-frame event loop that drains stderr, then stdout,
// through the MI Lexer into the Record Store.
//
// Grounded on the teacher's debugger.run()/setState (an atomic
// current-state value, a fixed loop consuming one state's worth of work
// per invocation) and debugger/govern's state/sub-state vocabulary,
// reworked from the VCS emulator's seven-state loop (which *is* the thing
// being controlled) to a GDB/MI client's state machine (which drives an
// external process through a long, mostly-linear attach chain before
// settling into a two-state Running/Stopped cycle).
package session

import (
	"fmt"
	"time"

	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/process"
	"github.com/bmdebug/bmdebug/record"
	"github.com/bmdebug/bmdebug/refresh"
	"github.com/bmdebug/bmdebug/session/govern"
)

// ExecCursor is the execution position last reported by a `stopped`
// Exec record: file/line/address, per spec.md §4.4's ExecCmd/Running
// description.
type ExecCursor struct {
	File    string
	Line    int
	Address uint64
}

// Session is the state machine plus the process/lexer/store it drives.
type Session struct {
	pipe  *process.Pipe
	lexer *mi.Lexer
	store *record.Store

	gdbPath string
	elfPath string

	state    govern.State
	subState govern.SubState
	marked   bool

	refresh        refresh.Scheduler
	pendingRefresh refresh.Bit

	cursor ExecCursor

	// attach-chain state captured along the way.
	monitorCmds  []string
	connectCmd   string // "connect_srst" or "connect_rst"
	asyncOnly    bool
	manchester   bool
	entryPoint   uint64
	needDownload bool

	// retry/idle-delay bookkeeping.
	retryAt time.Time

	// double-Ctrl+C hard-reset escalation (spec.md §5).
	lastInterrupt time.Time

	// tpwrActive is set once TpwrEnable succeeds, consulted by the hard
	// reset path (spec.md §4.4: "if TPWR is active...").
	tpwrActive bool
}

// New returns a Session ready to begin the boot sequence once Step is
// first called. gdbPath is the GDB executable (default
// "arm-none-eabi-gdb" per spec.md §6); elfPath is the program to load.
func New(gdbPath, elfPath string) *Session {
	return &Session{
		gdbPath:    gdbPath,
		elfPath:    elfPath,
		lexer:      mi.NewLexer(),
		store:      record.NewStore(),
		state:      govern.Init,
		connectCmd: "connect_srst",
	}
}

// Store gives read access to the Record Store every model extractor
// consults.
func (s *Session) Store() *record.Store {
	return s.store
}

// State reports the state machine's current node.
func (s *Session) State() govern.State {
	return s.state
}

// Cursor reports the last-known execution position.
func (s *Session) Cursor() ExecCursor {
	return s.cursor
}

// Send implements interceptor.Sender: it is the command-submit path
// spec.md §5 names alongside the state machine as the only two writers of
// GDB's stdin. Per spec.md §5's "Refresh operations are serialised: ...
// No further user input is sent to GDB until atprompt is true again" -
// callers are expected to have checked AtPrompt before calling Send.
func (s *Session) Send(miCommand string) error {
	if s.pipe == nil {
		return fmt.Errorf("session: no gdb process attached")
	}
	_, err := s.pipe.Write([]byte(miCommand + "\n"))
	return err
}

// AtPrompt reports whether the lexer has most recently seen GDB's
// "(gdb)" prompt line.
func (s *Session) AtPrompt() bool {
	return s.lexer.AtPrompt()
}

// ScheduleBreakpointRefresh implements interceptor.Refresher: the
// interceptor calls this after any command it recognises as having
// changed the breakpoint list (spec.md §4.5).
func (s *Session) ScheduleBreakpointRefresh() {
	s.refresh.Schedule(refresh.Breakpoints)
}

// ScheduleMemoryRefresh implements interceptor.Refresher: the `x` handler
// calls this after issuing a one-shot memory read (spec.md §4.5).
func (s *Session) ScheduleMemoryRefresh() {
	s.refresh.Schedule(refresh.Memory)
}

// PendingRefresh reports the refresh.Bit currently awaiting its MI reply,
// if any. A glue layer subscribed to Store() uses this, alongside each
// incoming record.Entry, to know which model a pending Result record
// should be extracted into (RefreshCommand documents that the session
// issues the request and clears the bit, but the extraction itself is
// the caller's job). Only meaningful while State() == govern.Stopped;
// marked is reused by the boot and hard-reset sequences for their own
// unrelated pending commands, so this reports false outside Stopped.
func (s *Session) PendingRefresh() (refresh.Bit, bool) {
	if s.state != govern.Stopped || !s.marked {
		return 0, false
	}
	return s.pendingRefresh, true
}

// Step runs one frame of the event loop (spec.md §5's scheduling model):
// drain stderr then stdout through the lexer, then advance the state
// machine by at most one MI command.
func (s *Session) Step() error {
	if s.pipe == nil {
		if s.state != govern.Init {
			return fmt.Errorf("session: no process attached")
		}
	} else {
		if err := s.drain(); err != nil {
			return err
		}
	}

	return s.stepState()
}

// drain implements "stderr is fully drained before stdout; this
// guarantees that any error context precedes the prompt" (spec.md §5).
func (s *Session) drain() error {
	errBytes, err := s.pipe.ReadStderr(1 << 16)
	if err != nil {
		return err
	}
	for _, rec := range s.lexer.Feed(errBytes) {
		s.store.Append(rec.Class, rec.Flags, rec.Text)
	}

	outBytes, err := s.pipe.ReadStdout(1 << 16)
	if err != nil {
		return err
	}
	for _, rec := range s.lexer.Feed(outBytes) {
		s.store.Append(rec.Class, rec.Flags, rec.Text)
	}

	return nil
}

// RequestInterrupt posts an -exec-interrupt (spec.md §5's Cancellation);
// a second request within 3s of the first escalates to a hard reset
// instead of repeating the interrupt.
func (s *Session) RequestInterrupt(now time.Time) error {
	if !s.lastInterrupt.IsZero() && now.Sub(s.lastInterrupt) < 3*time.Second {
		s.lastInterrupt = time.Time{}
		return s.beginHardReset()
	}

	s.lastInterrupt = now
	return s.Send("-exec-interrupt")
}
