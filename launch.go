package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bmdebug/bmdebug/config"
	"github.com/bmdebug/bmdebug/engine"
	"github.com/bmdebug/bmdebug/gui"
	"github.com/bmdebug/bmdebug/gui/bmimgui"
	"github.com/bmdebug/bmdebug/logger"
	"github.com/bmdebug/bmdebug/model"
	"github.com/bmdebug/bmdebug/modalflag"
	"github.com/bmdebug/bmdebug/modelsync"
	"github.com/bmdebug/bmdebug/paths"
	"github.com/bmdebug/bmdebug/session"
	"github.com/bmdebug/bmdebug/source"
	"github.com/bmdebug/bmdebug/terminal"
	"github.com/bmdebug/bmdebug/terminal/colorterm"
	"github.com/bmdebug/bmdebug/terminal/plainterm"
	"github.com/bmdebug/bmdebug/view"
)

// printUsage is bmdebug's own "unknown option" path (spec.md §6: "Unknown
// option: exit non-zero after printing usage"). modalflag.Modes only
// writes usage text for an explicit -h/-help/--help request (ParseHelp);
// a genuinely unrecognised flag surfaces as a plain error from Parse(),
// so this is printed by hand rather than by modalflag itself.
func printUsage(w *os.File) {
	fmt.Fprintf(w, "usage: %s [options] [elf-file]\n", applicationName)
	fmt.Fprintln(w, "  -f=SIZE[,STD[,MONO]]  font point size and optional font family names")
	fmt.Fprintln(w, "  -g=PATH               path to the GDB executable (default arm-none-eabi-gdb)")
	fmt.Fprintln(w, "  -t=N                  target index on multi-device scans (default 1)")
	fmt.Fprintln(w, "  -h                    show this help")
	fmt.Fprintln(w, "  -v                    show version")
}

// parseFontSpec parses the `-f=SIZE[,STD[,MONO]]` CLI option into a
// gui.FontSpec. An empty string is not an error - it means "use defaults".
func parseFontSpec(s string) (gui.FontSpec, error) {
	var spec gui.FontSpec
	if s == "" {
		return spec, nil
	}

	parts := strings.Split(s, ",")

	size, err := strconv.Atoi(parts[0])
	if err != nil {
		return spec, fmt.Errorf("main: invalid font size %q: %w", parts[0], err)
	}
	spec.PointSize = size

	if len(parts) > 1 {
		spec.Standard = parts[1]
	}
	if len(parts) > 2 {
		spec.Mono = parts[2]
	}

	return spec, nil
}

// launch is run as a goroutine from main(). It parses the command line,
// loads persistent state, wires the session/interceptor/engine together,
// and runs the input loop until the user quits or a fatal error occurs.
func launch(sync *mainSync, args []string) {
	logger.Logf(logger.Allow, applicationName, "%s", version)

	var md modalflag.Modes
	md.Output = os.Stdout
	md.NewArgs(args)

	fontArg := md.AddString("f", "", "font point size and optional font family names: SIZE[,STD[,MONO]]")
	gdbArg := md.AddString("g", "", "path to the GDB executable (default arm-none-eabi-gdb)")
	targetArg := md.AddInt("t", 1, "target index on multi-device scans")
	versionArg := md.AddBool("v", false, "show version and exit")

	result, err := md.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Stderr)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}
	if result == modalflag.ParseHelp {
		sync.state <- stateRequest{req: reqQuit, args: 0}
		return
	}
	if *versionArg {
		fmt.Println(applicationName, version)
		sync.state <- stateRequest{req: reqQuit, args: 0}
		return
	}

	remaining := md.RemainingArgs()
	if len(remaining) > 1 {
		fmt.Fprintln(os.Stderr, "main: too many arguments")
		printUsage(os.Stderr)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	var elfFile string
	if len(remaining) == 1 {
		elfFile = remaining[0]
	}

	fontSpec, err := parseFontSpec(*fontArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	configPath, err := paths.ResourcePath("", "config")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	global, err := config.NewGlobal(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}
	defer global.Save()

	gdbPath := *gdbArg
	if gdbPath == "" {
		gdbPath = global.GdbPath.Get()
	} else {
		global.GdbPath.Set(gdbPath)
	}

	global.ProbeIndex.Set(*targetArg)

	var elfCfg *config.ELF
	if elfFile != "" {
		elfCfg, err = config.LoadELF(elfFile + ".bmcfg")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			sync.state <- stateRequest{req: reqQuit, args: 20}
			return
		}
		global.RecentELF.Set(elfFile)
	}
	_ = elfCfg // consulted by the attach chain once wired into session.New

	sess := session.New(gdbPath, elfFile)

	files := &source.Files{}
	cursor := view.NewCursor(files)
	watches := &model.Watches{}
	breakpoints := &model.Breakpoints{}
	locals := &model.Locals{}
	registers := model.NewRegisters(model.CortexMRegisterNames)
	memory := &model.Memory{}

	// folds every completed refresh reply (spec.md §4.4's Stopped
	// sequence) into the model structs above; nothing else in main reads
	// from it directly, the front-end panels (once built) will.
	modelsync.New(sess, sess.Store(), breakpoints, locals, watches, registers, memory)

	helpTopics := map[string]string{
		"list":    "list [FILE|FUNC|+|-]: move the source cursor",
		"find":    "find PATTERN: search forward from the cursor",
		"disp":    "disp [/FMT] EXPR: watch an expression",
		"undisp":  "undisp N: remove a watch",
		"trace":   "trace ...: configure SWO capture",
		"serial":  "serial ...: configure the probe's serial monitor",
	}

	term, g, err := createFrontEnd(sync, global, fontSpec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}
	if g != nil {
		defer func() { _ = g.Destroy() }()
	}

	// no SVD document is loaded yet (the SVD reader is an out-of-scope
	// external collaborator per spec.md §1); a nil SVDLookup makes
	// regalias a no-op until that's wired up.
	eng, err := engine.New(sess, term, cursor, watches, helpTopics, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	// the input loop owns Ctrl+C from here on (spec.md §5's double-Ctrl+C
	// hard-reset escalation is handled inside engine.Run via
	// session.RequestInterrupt).
	sync.state <- stateRequest{req: reqNoIntSig}

	if err := eng.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "main: %s\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit, args: 0}
}

// createFrontEnd picks the terminal implementation and, if a GUI is
// wanted, requests its creation on the main OS thread via sync (SDL's
// requirement, per the teacher's own gui creation dance). A GUI backend
// implementing terminal.Broker would supply its own terminal; bmimgui
// does not (its console lives in its own render loop, out of scope for
// the command-line input loop), so a colour terminal is always used for
// interactive input alongside any GUI.
func createFrontEnd(sync *mainSync, global *config.Global, fontSpec gui.FontSpec) (terminal.Terminal, guiControl, error) {
	sync.state <- stateRequest{
		req: reqCreateGUI,
		args: guiCreate(func() (guiControl, error) {
			width := int32(global.WindowWidth.Get())
			height := int32(global.WindowHeight.Get())
			g, err := bmimgui.NewGUI(width, height)
			if err != nil {
				return nil, err
			}
			if fontSpec.PointSize > 0 {
				g.SetFeatureNoError(gui.ReqFontSize, fontSpec)
			}
			g.SetFeatureNoError(gui.ReqSetVisibility, true)
			return g, nil
		}),
	}

	select {
	case created := <-sync.gui:
		g, _ := created.(guiControl)
		return &colorterm.ColorTerminal{}, g, nil
	case err := <-sync.guiError:
		// no usable GUI: fall back to a plain terminal session so the
		// debugger is still usable headless (eg. over SSH, or in CI).
		logger.Logf(logger.Allow, applicationName, "gui unavailable, falling back to plain terminal: %s", err)
		return &plainterm.PlainTerminal{}, nil, nil
	}
}
