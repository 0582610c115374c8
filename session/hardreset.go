package session

import (
	"time"

	"github.com/bmdebug/bmdebug/session/govern"
)

// tpwrDisableSettle is the delay spec.md §4.4 names between disabling
// TPWR and re-entering Init during a hard reset: "delays >= 200 ms".
const tpwrDisableSettle = 200 * time.Millisecond

// beginHardReset implements spec.md §4.4's hard reset path: if TPWR is
// active, disable it, wait out the settle delay, and re-enter Init so the
// attach chain (which re-enables TPWR) runs again; otherwise issue a
// monitor reset command directly.
func (s *Session) beginHardReset() error {
	s.state = govern.HardReset
	s.marked = false

	if s.tpwrActive {
		if err := s.Send("monitor tpwr disable"); err != nil {
			return err
		}
		s.tpwrActive = false
		s.retryAt = time.Now().Add(tpwrDisableSettle)
		s.marked = true
		return nil
	}

	resetCmd := "monitor reset"
	for _, c := range s.monitorCmds {
		if c == "hard_srst" {
			resetCmd = "monitor hard_srst"
			break
		}
	}
	if err := s.Send(resetCmd); err != nil {
		return err
	}
	s.marked = true
	return nil
}

// stepHardReset waits out the TPWR-disable settle delay (if any) then
// re-enters Init, or - for the direct monitor-reset path - waits for the
// command's reply before re-entering Init.
func (s *Session) stepHardReset() error {
	if !s.retryAt.IsZero() {
		if time.Now().Before(s.retryAt) {
			return nil
		}
		s.retryAt = time.Time{}
		s.marked = false
		s.state = govern.Init
		return nil
	}

	if !s.lexer.AtPrompt() {
		return nil
	}

	s.marked = false
	s.state = govern.Init
	return nil
}
