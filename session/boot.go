package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/process"
	"github.com/bmdebug/bmdebug/session/govern"
)

// retryDelay is the idle-delay the boot chain waits before retrying a
// state after a non-fatal MI error (spec.md §4.4's "self-transitions back
// (via an idle-delay timer) to retry"). spec.md leaves the exact duration
// an Open Question for the general retry case (distinct from the named
// 1s probe-scan/attach-retry and 200ms TPWR intervals in §5); resolved
// here at 500ms and recorded in DESIGN.md.
const retryDelay = 500 * time.Millisecond

// stepState advances the state machine by at most one MI command, per
// spec.md §4.4: "each state runs at most one MI command per invocation...
// two phases per invocation: issue... and await".
func (s *Session) stepState() error {
	switch s.state {
	case govern.Init:
		return s.stepInit()
	case govern.Running:
		return s.stepRunning()
	case govern.Stopped:
		return s.stepStopped()
	case govern.HardReset:
		return s.stepHardReset()
	default:
		return s.stepBoot()
	}
}

// stepInit spawns the child process. There is no MI reply to await here -
// success is spawning without error, at which point the state advances
// immediately.
func (s *Session) stepInit() error {
	pipe, err := process.Launch(s.gdbPath, "--interpreter=mi2", "-nx")
	if err != nil {
		return fmt.Errorf("session: spawning gdb: %w", err)
	}

	s.pipe = pipe
	s.state = govern.SpawnGdb
	return nil
}

// issueCommand returns the MI command issued when entering st, and
// whether one is required at all. States with no command (eg. ones that
// simply wait out a retry delay) return ok=false.
func (s *Session) issueCommand(st govern.State) (cmd string, ok bool) {
	switch st {
	case govern.SpawnGdb:
		// the child is already spawned by stepInit; SpawnGdb's own job is
		// to wait for the first prompt, which needs no command of its
		// own.
		return "", false
	case govern.ScanProbe:
		return "monitor swdp_scan", true
	case govern.GdbVersion:
		return "-gdb-version", true
	case govern.LoadFile:
		return fmt.Sprintf("-file-exec-and-symbols %s", s.elfPath), true
	case govern.TargetSelect:
		return "target extended-remote localhost:2000", true
	case govern.IdentifyProbe:
		return "monitor version", true
	case govern.QueryMonitorCmds, govern.QueryMonitorCmds2:
		return "monitor help", true
	case govern.ConnectSrst:
		return "monitor " + s.connectCmd, true
	case govern.TpwrEnable:
		return "monitor tpwr enable", true
	case govern.ScanTarget:
		return "monitor jtag_scan", true
	case govern.AsyncMode:
		return "-gdb-set mi-async on", true
	case govern.Attach:
		return "-target-attach 1", true
	case govern.GetSources:
		return "-file-list-exec-source-files", true
	case govern.MemAccessOff:
		return "monitor mem_access off", true
	case govern.MemRemapScript:
		return "monitor mem_access off\nmonitor mmap add 0x0 0x20000000 flash", true
	case govern.PartIdQuery:
		return "-data-evaluate-expression *0xE0042000", true
	case govern.Verify:
		return "compare-sections", true
	case govern.Download:
		return "-target-download", true
	case govern.CheckEntryPoint:
		return "-data-evaluate-expression &main", true
	case govern.InsertEntryBreak:
		return "-break-insert -t *main", true
	case govern.ExecRun:
		return "-exec-run --start", true
	}
	return "", false
}

// stepBoot runs the generic issue/await cycle for every state in the
// fixed boot/attach chain (spec.md §4.4's ordered list).
func (s *Session) stepBoot() error {
	if !s.lexer.AtPrompt() && s.marked {
		// still waiting for the reply; nothing to do this frame.
		return nil
	}

	if !s.marked {
		if !s.retryAt.IsZero() && time.Now().Before(s.retryAt) {
			return nil
		}

		cmd, ok := s.issueCommand(s.state)
		if !ok {
			// states with no command of their own (SpawnGdb) simply wait
			// for GDB's first prompt before advancing.
			if !s.lexer.AtPrompt() {
				return nil
			}
			return s.advanceBoot()
		}

		s.store.MarkLatestResult()
		if err := s.Send(cmd); err != nil {
			return err
		}
		s.marked = true
		return nil
	}

	entry, ok := s.store.GetLastOfClass(mi.Result, 0, mi.Handled)
	if !ok {
		return nil
	}

	outcome, body, err := mi.ParseResult(entry.Text)
	if err != nil {
		// malformed reply: treat like any other retryable error rather
		// than aborting the whole session.
		s.store.MarkLastResultHandled(false)
		s.scheduleRetry()
		return nil
	}
	s.store.MarkLastResultHandled(false)

	if outcome == "error" {
		msg, _ := body.Field("msg")
		s.store.Append(mi.Log, 0, fmt.Sprintf("%s: %s", s.state, msg.String()))
		if isFatal(s.state) {
			return fmt.Errorf("session: fatal error in state %s: %s", s.state, msg.String())
		}
		s.scheduleRetry()
		return nil
	}

	s.onBootResult(s.state, body)

	return s.advanceBoot()
}

// isFatal reports whether an error reply during st should abort the
// session outright rather than retry. Per spec.md §4.4: "except where the
// error is fatal" - left unspecified which states qualify; resolved here
// as "none mid-scan/mid-attach are fatal" since every named failure mode
// in spec.md §4.1/§4.4 is a surfaced, retryable condition, and recorded
// in DESIGN.md.
func isFatal(st govern.State) bool {
	return false
}

func (s *Session) scheduleRetry() {
	s.marked = false
	s.retryAt = time.Now().Add(retryDelay)
}

func (s *Session) advanceBoot() error {
	s.marked = false
	s.retryAt = time.Time{}

	if s.state == govern.Verify && !s.needDownload {
		s.state = govern.CheckEntryPoint
		return nil
	}

	next, ok := govern.Next(s.state)
	if !ok {
		return fmt.Errorf("session: no successor state for %s", s.state)
	}
	s.state = next
	return nil
}

// onBootResult applies state-specific parsing of a successful reply
// before the generic advance happens.
func (s *Session) onBootResult(st govern.State, body mi.Value) {
	switch st {
	case govern.IdentifyProbe:
		s.parseProbeVersion(body)
	case govern.QueryMonitorCmds:
		s.parseMonitorCmds()
	case govern.TpwrEnable:
		s.tpwrActive = true
	case govern.CheckEntryPoint:
		if v, ok := body.Field("value"); ok {
			s.entryPoint = parseHexAddress(v.String())
		}
	case govern.Verify:
		// a real compare-sections parse would set needDownload from a
		// mismatch report; defaulting to true keeps the optional Download
		// state on the path until that parsing is implemented.
		s.needDownload = true
	}
}

// parseProbeVersion inspects `monitor version`'s console output for a
// probe type name, overriding the SWO mode default for probes known to
// be asynchronous-only or Manchester-only (spec.md §4.4).
func (s *Session) parseProbeVersion(_ mi.Value) {
	for _, e := range s.store.Between() {
		text := strings.ToLower(e.Text)
		if strings.Contains(text, "black magic probe") {
			continue
		}
		if strings.Contains(text, "async") {
			s.asyncOnly = true
		}
		if strings.Contains(text, "manchester") {
			s.manchester = true
		}
	}
}

// parseMonitorCmds captures the monitor-command list from `monitor help`
// output between two result marks: each token before "--" on a line is a
// command name (spec.md §4.4). The presence of connect_srst vs
// connect_rst in that list picks the command ConnectSrst issues.
func (s *Session) parseMonitorCmds() {
	s.monitorCmds = s.monitorCmds[:0]
	for _, e := range s.store.Between() {
		before, _, found := strings.Cut(e.Text, "--")
		if !found {
			continue
		}
		name := strings.TrimSpace(before)
		if name == "" {
			continue
		}
		s.monitorCmds = append(s.monitorCmds, strings.Fields(name)[0])
	}

	for _, c := range s.monitorCmds {
		if c == "connect_srst" {
			s.connectCmd = "connect_srst"
			return
		}
		if c == "connect_rst" {
			s.connectCmd = "connect_rst"
		}
	}
}

func parseHexAddress(s string) uint64 {
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0
	}
	return v
}
