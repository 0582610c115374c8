package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bmdebug/bmdebug/interceptor"
	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/model"
	"github.com/bmdebug/bmdebug/record"
	"github.com/bmdebug/bmdebug/regalias"
	"github.com/bmdebug/bmdebug/script"
	"github.com/bmdebug/bmdebug/session"
	"github.com/bmdebug/bmdebug/session/govern"
	"github.com/bmdebug/bmdebug/terminal"
)

// Engine drives one interactive debugging session: it owns the terminal
// and the script.Scribe/Queue pair, and routes committed lines through the
// Command Interceptor before forwarding anything unclaimed to GDB via the
// session.
type Engine struct {
	sess        *session.Session
	interceptor *interceptor.Interceptor
	aliaser     *regalias.Aliaser
	term        terminal.Terminal
	scribe      *script.Scribe
	queue       script.Queue
	events      terminal.ReadEvents

	quit bool
}

// New wires an Engine. sourceView/watches are the collaborators the
// Command Interceptor needs (spec.md §4.5); helpTopics is its in-memory
// help-page table. svd resolves Register-Alias Layer references in raw
// user input (spec.md GLOSSARY) before they reach the interceptor; a nil
// svd (no SVD document loaded) makes the Aliaser a no-op.
func New(sess *session.Session, term terminal.Terminal, sourceView interceptor.SourceView, watches *model.Watches, helpTopics map[string]string, svd regalias.SVDLookup) (*Engine, error) {
	ic, err := interceptor.New(sess, sourceView, sess, watches, helpTopics)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine{
		sess:        sess,
		interceptor: ic,
		aliaser:     regalias.New(svd),
		term:        term,
		scribe:      &script.Scribe{},
		events: terminal.ReadEvents{
			Signal:                  make(chan os.Signal, 1),
			PushedFunction:          make(chan func(), 8),
			PushedFunctionImmediate: make(chan func(), 8),
		},
	}

	sess.Store().Subscribe(e.printEntry)

	return e, nil
}

// Scribe gives the caller (typically a `script record` CLI flag, or a
// front-end command) access to begin/end session scribing.
func (e *Engine) Scribe() *script.Scribe {
	return e.scribe
}

// Rescribe replays a script file: every line it yields is queued and
// processed exactly as if the user had typed it, with the scribe (if
// active) suppressing write-back per its playbackDepth guard.
func (e *Engine) Rescribe(rescr *script.Rescribe) error {
	if err := e.scribe.StartPlayback(); err != nil {
		return err
	}
	defer e.scribe.EndPlayback()

	for {
		line, err := rescr.TermRead(terminal.Prompt{}, &e.events)
		if err != nil {
			return nil
		}
		if ln, qerr := e.queue.Push(line); qerr == nil {
			e.handleLine(ln)
		}
	}
}

// Run is the main loop: step the session, and whenever it's at a prompt
// with no queued input left, block for one line from the terminal.
// Returns when the terminal reports UserQuit or a non-recoverable error
// occurs.
func (e *Engine) Run() error {
	if err := e.term.Initialise(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	defer e.term.CleanUp()
	defer e.scribe.EndSession()

	for !e.quit {
		if err := e.sess.Step(); err != nil {
			e.term.TermPrintLine(terminal.StyleError, err.Error())
		}

		if e.queue.More() {
			ln, ok := e.queue.Next()
			if ok {
				e.handleLine(ln)
			}
			continue
		}

		if !e.sess.AtPrompt() {
			continue
		}

		if err := e.readInput(); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) readInput() error {
	line, err := e.term.TermRead(e.buildPrompt(), &e.events)
	if err != nil {
		switch {
		case errors.Is(err, terminal.UserInterrupt):
			return e.sess.RequestInterrupt(time.Now())
		case errors.Is(err, terminal.UserQuit):
			e.quit = true
			return nil
		default:
			return err
		}
	}

	if line == "" {
		return nil
	}

	if err := e.scribe.WriteInput(line); err != nil {
		e.term.TermPrintLine(terminal.StyleError, err.Error())
	}

	ln, err := e.queue.Push(line)
	if err != nil {
		return nil
	}

	e.handleLine(ln)
	return nil
}

// handleLine runs one already-normalised line (script.Line, per
// script.Queue's semicolon/comment/line-ending normalisation) past the
// interceptor, per spec.md §4.5's "first handler to claim the line wins".
func (e *Engine) handleLine(ln script.Line) {
	ln.Entry = e.aliaser.Rewrite(ln.Entry)

	res, err := e.interceptor.Intercept(ln.Entry)
	if err != nil {
		e.term.TermPrintLine(terminal.StyleError, err.Error())
		e.scribe.Rollback()
		return
	}

	if res.Output != "" {
		e.term.TermPrintLine(terminal.StyleFeedback, res.Output)
	}

	if res.Forward != "" {
		if err := e.sess.Send(res.Forward); err != nil {
			e.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		return
	}

	if res.Handled {
		return
	}

	if err := e.sess.Send(ln.Entry); err != nil {
		e.term.TermPrintLine(terminal.StyleError, err.Error())
	}
}

// printEntry is the record.Store subscriber: every classified line GDB
// produces is both shown to the user and recorded to the active script,
// per spec.md's "Scribe also writes terminal output... for the benefit
// of a human reader".
func (e *Engine) printEntry(ent record.Entry) {
	e.term.TermPrintLine(styleFor(ent.Class), ent.Text)
	e.scribe.WriteOutput(ent.Text)
}

func styleFor(class mi.Class) terminal.Style {
	switch class {
	case mi.Log:
		return terminal.StyleLog
	case mi.TargetOut:
		return terminal.StyleInstrument
	case mi.ConsoleOut, mi.Notice, mi.Status:
		return terminal.StyleFeedback
	default:
		return terminal.StyleEcho
	}
}

func (e *Engine) buildPrompt() terminal.Prompt {
	cur := e.sess.Cursor()

	promptType := terminal.PromptTypeStopped
	if e.sess.State() == govern.Running {
		promptType = terminal.PromptTypeRunning
	}

	content := cur.File
	if content == "" {
		content = "bmdebug"
	} else {
		content = fmt.Sprintf("%s:%d", content, cur.Line)
	}

	return terminal.Prompt{
		Content:        content,
		Type:           promptType,
		TargetAttached: e.sess.State() == govern.Running || e.sess.State() == govern.Stopped,
		Recording:      e.scribe.IsActive(),
	}
}
