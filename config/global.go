// Package config implements the persistent state described in spec.md §6:
// a flat, per-user Global config (window geometry, splitter ratios, panel
// layout, GDB path, probe index, IP address, recent-command list, recent
// ELF) and a sectioned per-ELF parameter file (<elf>.bmcfg).
//
// The two halves are grounded differently. Global reuses prefs.Disk - the
// same flat "key :: value" store the teacher's own preference system is
// built from - since every field it holds is a single scalar with no
// natural grouping. ELF (elf.go) is genuinely sectioned ([Target],
// [Settings], [Flash], [SWO trace], [Serial monitor]) and is built on
// gopkg.in/ini.v1 instead, which several other repos in the retrieval pack
// depend on for exactly this kind of structured config file; prefs.Disk has
// no notion of sections and would have to fake them with key prefixes.
package config

import (
	"fmt"
	"strings"

	"github.com/bmdebug/bmdebug/history"
	"github.com/bmdebug/bmdebug/prefs"
)

// recentCommandsMax mirrors spec.md §6's "recent-command list (max 50)";
// history.List already enforces the same bound internally.
const recentCommandsMax = 50

// Global is the per-user configuration persisted across invocations.
type Global struct {
	disk *prefs.Disk

	WindowWidth  prefs.Int
	WindowHeight prefs.Int

	SplitterSourceDisasm prefs.Float
	SplitterMainTerminal prefs.Float

	PanelExpanded prefs.Bool
	PanelSize     prefs.Int

	GdbPath    prefs.String
	ProbeIndex prefs.Int
	IPAddress  prefs.String

	RecentELF prefs.String

	recentCommands *prefs.Generic
	history        *history.List
}

// NewGlobal returns a Global backed by filename, loading any existing
// values immediately. A missing file is not an error; every field is left
// at its zero value except GdbPath, which defaults to "arm-none-eabi-gdb"
// per spec.md §6's CLI default, and ProbeIndex, which defaults to 1.
func NewGlobal(filename string) (*Global, error) {
	disk, err := prefs.NewDisk(filename)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	g := &Global{
		disk:    disk,
		history: history.NewList(nil),
	}

	g.GdbPath.Set("arm-none-eabi-gdb")
	g.ProbeIndex.Set(1)

	g.recentCommands = prefs.NewGeneric(
		func(v prefs.Value) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("config: unsupported type for recent-command list: %T", v)
			}
			g.history = history.NewList(splitList(s))
			return nil
		},
		func() prefs.Value {
			return joinList(g.history.Entries())
		},
	)

	if err := g.disk.Add("window.width", &g.WindowWidth); err != nil {
		return nil, err
	}
	if err := g.disk.Add("window.height", &g.WindowHeight); err != nil {
		return nil, err
	}
	if err := g.disk.Add("splitter.source_disasm", &g.SplitterSourceDisasm); err != nil {
		return nil, err
	}
	if err := g.disk.Add("splitter.main_terminal", &g.SplitterMainTerminal); err != nil {
		return nil, err
	}
	if err := g.disk.Add("panel.expanded", &g.PanelExpanded); err != nil {
		return nil, err
	}
	if err := g.disk.Add("panel.size", &g.PanelSize); err != nil {
		return nil, err
	}
	if err := g.disk.Add("gdb.path", &g.GdbPath); err != nil {
		return nil, err
	}
	if err := g.disk.Add("probe.index", &g.ProbeIndex); err != nil {
		return nil, err
	}
	if err := g.disk.Add("probe.ip", &g.IPAddress); err != nil {
		return nil, err
	}
	if err := g.disk.Add("recent.elf", &g.RecentELF); err != nil {
		return nil, err
	}
	if err := g.disk.Add("recent.commands", g.recentCommands); err != nil {
		return nil, err
	}

	return g, nil
}

// History returns the recent-command list backing the terminal's Prev/Next
// walk and spec.md §6's persisted recent-command list.
func (g *Global) History() *history.List {
	return g.history
}

// AddCommand records cmd in the recent-command list.
func (g *Global) AddCommand(cmd string) {
	g.history.Add(cmd)
}

// Save persists every field to disk.
func (g *Global) Save() error {
	return g.disk.Save()
}

// Load re-reads every field from disk.
func (g *Global) Load() error {
	return g.disk.Load()
}

// joinList/splitList encode a recent-command list as a single pref value.
// Entries are joined with "\x1f" (unit separator) rather than a printable
// delimiter since commands may themselves contain commas or pipes.
const listSep = "\x1f"

func joinList(entries []string) string {
	return strings.Join(entries, listSep)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}
