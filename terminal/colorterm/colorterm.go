// Package colorterm implements the terminal.Terminal interface for the
// bmdebug front-end. It supports color output, history and tab completion.
package colorterm

import (
	"os"

	"github.com/bmdebug/bmdebug/history"
	"github.com/bmdebug/bmdebug/terminal/commandline"

	"github.com/bmdebug/bmdebug/terminal/colorterm/easyterm"
)

// ColorTerminal implements terminal.Terminal with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader        runeReader
	history       *history.List
	tabCompletion *commandline.TabCompletion

	silenced bool
}

// Initialise perfoms any setting up required for the terminal
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.history = history.NewList(nil)
	ct.reader = initRuneReader(os.Stdin)

	return nil
}

// RegisterHistory swaps in a history.List seeded from persisted state (eg.
// the global config's recent-command list). Must be called after
// Initialise.
func (ct *ColorTerminal) RegisterHistory(h *history.List) {
	ct.history = h
}

// CleanUp perfoms any cleaning up required for the terminal
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(tc *commandline.TabCompletion) {
	ct.tabCompletion = tc
}

// IsRealTerminal implements the terminal.Input interface.
func (ct *ColorTerminal) IsRealTerminal() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}
