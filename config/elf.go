package config

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// SWOTrace mirrors spec.md §6's [SWO trace] section. Channel holds the
// per-channel "ENABLED #RRGGBB NAME" triple for channels 0..31.
type SWOTrace struct {
	Mode     string
	Bitrate  int
	Clock    int
	Datasize int
	Enabled  bool
	CTF      string
	Channels [32]TraceChannel
}

// TraceChannel is one channel of a [SWO trace] section, serialised as
// "ENABLED #RRGGBB NAME".
type TraceChannel struct {
	Enabled bool
	Colour  string
	Name    string
}

// SerialMonitor mirrors spec.md §6's [Serial monitor] section.
type SerialMonitor struct {
	Mode string
	Port string
	Baud int
}

// ELF is the per-program parameter file (<elf>.bmcfg, spec.md §6): sections
// [Target], [Settings], [Flash], [SWO trace] and [Serial monitor].
type ELF struct {
	filename string

	EntryPoint string
	CmsisSVD   string
	SourcePath string

	TPWR         bool
	ConnectSRST  bool
	AutoDownload bool

	Trace  SWOTrace
	Serial SerialMonitor
}

// NewELF returns the default ELF parameters for a program with no
// <elf>.bmcfg file yet; defaults mirror the teacher's conservative
// connect/flash behaviour (connect via SRST, auto-download on).
func NewELF(filename string) *ELF {
	return &ELF{
		filename:     filename,
		ConnectSRST:  true,
		AutoDownload: true,
		Trace:        SWOTrace{Mode: "async", Bitrate: 2250000, Datasize: 1},
		Serial:       SerialMonitor{Mode: "usb", Baud: 115200},
	}
}

// LoadELF reads filename (an INI file per spec.md §6) into a new ELF. A
// missing file is not an error; NewELF's defaults are returned.
func LoadELF(filename string) (*ELF, error) {
	e := NewELF(filename)

	cfg, err := ini.LoadSources(ini.LoadOptions{Loose: true}, filename)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	target := cfg.Section("Target")
	e.EntryPoint = target.Key("entrypoint").String()
	e.CmsisSVD = target.Key("cmsis-svd").String()
	e.SourcePath = target.Key("source-path").String()

	settings := cfg.Section("Settings")
	e.TPWR = settings.Key("tpwr").MustBool(false)
	e.ConnectSRST = settings.Key("connect_srst").MustBool(true)

	flash := cfg.Section("Flash")
	e.AutoDownload = flash.Key("auto-download").MustBool(true)

	swo := cfg.Section("SWO trace")
	e.Trace.Mode = swo.Key("mode").MustString("async")
	e.Trace.Bitrate = swo.Key("bitrate").MustInt(2250000)
	e.Trace.Clock = swo.Key("clock").MustInt(0)
	e.Trace.Datasize = swo.Key("datasize").MustInt(1)
	e.Trace.Enabled = swo.Key("enabled").MustBool(false)
	e.Trace.CTF = swo.Key("ctf").String()
	for i := range e.Trace.Channels {
		key := fmt.Sprintf("chan%d", i)
		e.Trace.Channels[i] = parseChannel(swo.Key(key).String())
	}

	serial := cfg.Section("Serial monitor")
	e.Serial.Mode = serial.Key("mode").MustString("usb")
	e.Serial.Port = serial.Key("port").String()
	e.Serial.Baud = serial.Key("baud").MustInt(115200)

	return e, nil
}

// Save writes e to its file in the sectioned format spec.md §6 names.
func (e *ELF) Save() error {
	cfg := ini.Empty()

	target, err := cfg.NewSection("Target")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	target.NewKey("entrypoint", e.EntryPoint)
	target.NewKey("cmsis-svd", e.CmsisSVD)
	target.NewKey("source-path", e.SourcePath)

	settings, err := cfg.NewSection("Settings")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	settings.NewKey("tpwr", boolString(e.TPWR))
	settings.NewKey("connect_srst", boolString(e.ConnectSRST))

	flash, err := cfg.NewSection("Flash")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	flash.NewKey("auto-download", boolString(e.AutoDownload))

	swo, err := cfg.NewSection("SWO trace")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	swo.NewKey("mode", e.Trace.Mode)
	swo.NewKey("bitrate", fmt.Sprintf("%d", e.Trace.Bitrate))
	swo.NewKey("clock", fmt.Sprintf("%d", e.Trace.Clock))
	swo.NewKey("datasize", fmt.Sprintf("%d", e.Trace.Datasize))
	swo.NewKey("enabled", boolString(e.Trace.Enabled))
	swo.NewKey("ctf", e.Trace.CTF)
	for i, ch := range e.Trace.Channels {
		swo.NewKey(fmt.Sprintf("chan%d", i), formatChannel(ch))
	}

	serial, err := cfg.NewSection("Serial monitor")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	serial.NewKey("mode", e.Serial.Mode)
	serial.NewKey("port", e.Serial.Port)
	serial.NewKey("baud", fmt.Sprintf("%d", e.Serial.Baud))

	if err := cfg.SaveTo(e.filename); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// parseChannel parses the "ENABLED #RRGGBB NAME" triple spec.md §6 names
// for each SWO trace channel. NAME may itself contain spaces, so it is
// taken as everything after the colour field rather than a single word.
func parseChannel(s string) TraceChannel {
	var ch TraceChannel
	if s == "" {
		return ch
	}

	fields := strings.SplitN(s, " ", 3)
	if len(fields) > 0 {
		ch.Enabled = fields[0] == "ENABLED"
	}
	if len(fields) > 1 {
		ch.Colour = fields[1]
	}
	if len(fields) > 2 {
		ch.Name = fields[2]
	}
	return ch
}

func formatChannel(ch TraceChannel) string {
	state := "DISABLED"
	if ch.Enabled {
		state = "ENABLED"
	}
	colour := ch.Colour
	if colour == "" {
		colour = "#FFFFFF"
	}
	return fmt.Sprintf("%s %s %s", state, colour, ch.Name)
}
