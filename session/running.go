package session

import (
	"fmt"
	"strconv"

	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/refresh"
	"github.com/bmdebug/bmdebug/session/govern"
)

// ExecKind names the parameter ExecCmd translates into an MI exec
// command, per spec.md §4.4's list.
type ExecKind int

const (
	ExecStart ExecKind = iota
	ExecContinue
	ExecInterrupt
	ExecNext
	ExecStep
	ExecNextInstruction
	ExecStepInstruction
	ExecUntil
	ExecFinish
)

// ExecCmd translates kind (and, for ExecUntil, arg) into the MI exec
// command and sends it, leaving the state machine in Running to await the
// outcome. In assembly mode, Next/Step use the instruction-level variants
// per spec.md §4.4.
func (s *Session) ExecCmd(kind ExecKind, assemblyMode bool, arg int) error {
	var cmd string

	switch kind {
	case ExecStart:
		cmd = "-exec-run --start"
	case ExecContinue:
		cmd = "-exec-continue"
	case ExecInterrupt:
		cmd = "-exec-interrupt"
	case ExecNext:
		if assemblyMode {
			cmd = "-exec-next-instruction"
		} else {
			cmd = "-exec-next"
		}
	case ExecStep:
		if assemblyMode {
			cmd = "-exec-step-instruction"
		} else {
			cmd = "-exec-step"
		}
	case ExecNextInstruction:
		cmd = "-exec-next-instruction"
	case ExecStepInstruction:
		cmd = "-exec-step-instruction"
	case ExecUntil:
		cmd = fmt.Sprintf("-exec-until %d", arg)
	case ExecFinish:
		cmd = "-exec-finish"
	default:
		return fmt.Errorf("session: unknown exec kind %d", kind)
	}

	if err := s.Send(cmd); err != nil {
		return err
	}

	s.state = govern.Running
	return nil
}

// stepRunning scans Exec records for "stopped" or "running", per
// spec.md §4.4's Running description.
func (s *Session) stepRunning() error {
	entry, ok := s.store.GetLastOfClass(mi.Exec, 0, mi.Handled)
	if !ok {
		return nil
	}

	class, body, err := mi.ParseAsync(entry.Text)
	if err != nil {
		return nil
	}

	switch class {
	case "stopped":
		s.store.MarkLastResultHandled(false)
		s.updateCursor(body)
		s.scheduleStopRefresh()
		s.state = govern.Stopped
	case "running":
		s.store.MarkLastResultHandled(false)
	}

	return nil
}

// updateCursor applies a `stopped` record's frame=... fields to the
// execution cursor.
func (s *Session) updateCursor(body mi.Value) {
	frame, ok := body.Field("frame")
	if !ok {
		return
	}

	if file, ok := frame.Field("file"); ok {
		s.cursor.File = file.String()
	}
	if line, ok := frame.Field("line"); ok {
		if n, err := strconv.Atoi(line.String()); err == nil {
			s.cursor.Line = n
		}
	}
	if addr, ok := frame.Field("addr"); ok {
		s.cursor.Address = parseHexAddress(addr.String())
	}
}

// scheduleStopRefresh marks every model dirty on entry to Stopped, in the
// priority order spec.md §4.4 consumes them.
func (s *Session) scheduleStopRefresh() {
	s.refresh.Schedule(refresh.SWO)
	s.refresh.Schedule(refresh.Breakpoints)
	s.refresh.Schedule(refresh.Locals)
	s.refresh.Schedule(refresh.Watches)
	s.refresh.Schedule(refresh.Registers)
	s.refresh.Schedule(refresh.Memory)
}

// RefreshCommand returns the MI command for a pending refresh bit. The
// session package issues the request and clears the bit once the reply
// arrives; the actual MI-reply-to-model extraction is the caller's job
// (package model), since session has no business parsing model-shaped
// replies itself.
func RefreshCommand(b refresh.Bit) string {
	switch b {
	case refresh.SWO:
		return "monitor swo"
	case refresh.Breakpoints:
		return "-break-list"
	case refresh.Locals:
		return "-stack-list-variables --skip-unavailable --all-values"
	case refresh.Watches:
		return "-var-update --all-values *"
	case refresh.Registers:
		return "-data-list-register-values x"
	case refresh.Memory:
		return ""
	}
	return ""
}

// stepStopped consumes refresh bits in priority order, at most one MI
// command per invocation, then returns to Running if an Exec "running"
// record has since been observed (spec.md §4.4's Stopped description).
func (s *Session) stepStopped() error {
	if !s.marked {
		b, ok := s.refresh.Next()
		if !ok {
			if s.sawRunningAgain() {
				s.state = govern.Running
			}
			return nil
		}

		cmd := RefreshCommand(b)
		if cmd == "" {
			// Memory has no standing refresh command of its own - it's
			// driven on demand by the interceptor's `x` handler - so
			// there's nothing to issue; just clear it.
			s.refresh.Clear(b)
			return nil
		}

		if err := s.Send(cmd); err != nil {
			return err
		}
		s.marked = true
		s.pendingRefresh = b
		return nil
	}

	_, ok := s.store.GetLastOfClass(mi.Result, 0, mi.Handled)
	if !ok {
		return nil
	}
	s.store.MarkLastResultHandled(false)
	s.refresh.Clear(s.pendingRefresh)
	s.marked = false

	return nil
}

func (s *Session) sawRunningAgain() bool {
	entry, ok := s.store.GetLastOfClass(mi.Exec, 0, mi.Handled)
	if !ok {
		return false
	}
	class, _, err := mi.ParseAsync(entry.Text)
	if err != nil {
		return false
	}
	if class != "running" {
		return false
	}
	s.store.MarkLastResultHandled(false)
	return true
}
