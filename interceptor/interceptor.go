// Package interceptor implements the command interceptor/synonym layer
// (spec.md §4.5): for each line the user commits, a fixed-order chain of
// handlers gets first refusal, the first to claim the line consumes it
// (optionally still forwarding a rewritten MI command to GDB); anything no
// handler claims falls through to GDB untouched.
//
// Grounded on the teacher's debugger/commands.go / commands_template.go
// command-table-plus-switch architecture: a []string template compiled
// once via commandline.ParseCommandTemplate into a validated grammar, and
// a processTokens dispatcher - reworked around "claim or pass through"
// instead of "every command is implemented here", since unlike the
// teacher's debugger (which *is* the emulator) most lines this front-end
// sees are GDB's own syntax, not its.
package interceptor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmdebug/bmdebug/model"
	"github.com/bmdebug/bmdebug/terminal/commandline"
)

// Sender issues an MI command to GDB. Implemented by the session package.
type Sender interface {
	Send(miCommand string) error
}

// SourceView is the subset of the Source Model the interceptor drives
// directly (spec.md §4.5's list/find handlers move the cursor; §4.6 names
// the model these operate on).
type SourceView interface {
	MoveCursor(delta int)
	SetCursorLine(line int)
	SetCursorFile(file string)
	SetCursorFunction(function string) error
	CurrentFile() string
	FindFromCursor(pattern string) (line int, found bool)
	SetAssembly(file string, on bool)
}

// Refresher is asked to schedule a model refresh after a command completes
// (spec.md §4.5's "triggers a breakpoint-list refresh" rule, and the `x`
// handler's "schedules a refresh" for the Memory model).
type Refresher interface {
	ScheduleBreakpointRefresh()
	ScheduleMemoryRefresh()
}

// Interceptor holds the compiled template and the collaborators its
// handlers act on.
type Interceptor struct {
	commands *commandline.Commands

	sender    Sender
	source    SourceView
	refresher Refresher
	watches   *model.Watches

	helpTopics map[string]string
	lastFind   string
}

// New returns an Interceptor wired to its collaborators. helpTopics is the
// in-memory topic-page table the `help` handler serves; nil is fine and
// yields "no help available" for every topic.
func New(sender Sender, source SourceView, refresher Refresher, watches *model.Watches, helpTopics map[string]string) (*Interceptor, error) {
	cmds, err := commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, fmt.Errorf("interceptor: %w", err)
	}

	return &Interceptor{
		commands:   cmds,
		sender:     sender,
		source:     source,
		refresher:  refresher,
		watches:    watches,
		helpTopics: helpTopics,
	}, nil
}

// Result is what Intercept reports back to the caller (the session state
// machine, in normal operation).
type Result struct {
	// Handled is true if a handler claimed the line. The session must not
	// forward the original line to GDB when Handled is true.
	Handled bool

	// Forward, when non-empty, is a rewritten MI command the interceptor
	// wants sent to GDB in place of (or in addition to) the user's line -
	// eg. "help mon" rewrites to "monitor help".
	Forward string

	// Output is text to show the user directly, for handlers that need no
	// round-trip to GDB at all (list, find, the non-mon help topics).
	Output string
}

// Intercept tries every handler in spec.md §4.5's fixed order and returns
// the outcome of the first one that claims the line.
func (ic *Interceptor) Intercept(line string) (Result, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Result{}, nil
	}

	tokens := commandline.TokeniseInput(trimmed)
	if err := ic.commands.ValidateTokens(tokens); err != nil {
		// doesn't match any front-end command: pass through to GDB
		// unrewritten.
		ic.maybeRefreshBreakpoints(trimmed)
		return Result{}, nil
	}

	tokens.Reset()
	keyword, _ := tokens.Get()
	keyword = strings.ToUpper(keyword)

	var res Result
	var err error

	switch keyword {
	case cmdHelp:
		res, err = ic.handleHelp(tokens)
	case cmdInfo:
		res, err = ic.handleInfo(tokens)
	case cmdList:
		res, err = ic.handleList(tokens)
	case cmdFind:
		res, err = ic.handleFind(tokens)
	case cmdExamine:
		res, err = ic.handleExamine(tokens)
	case cmdDisplay:
		res, err = ic.handleDisplay(tokens)
	case cmdUndisplay:
		res, err = ic.handleUndisplay(tokens)
	case cmdFile, cmdReset, cmdLoad:
		res, err = ic.handleFileLifecycle(keyword, tokens)
	case cmdTrace:
		res, err = ic.handleTrace(tokens)
	case cmdSerial:
		res, err = ic.handleSerial(tokens)
	case cmdSemihosting:
		res = Result{Handled: true}
	case cmdDirectory:
		res, err = ic.handleDirectory(tokens)
	case cmdDisassemble, cmdAssembly:
		res, err = ic.handleAssembly(tokens)
	default:
		res = Result{}
	}

	if err != nil {
		return Result{}, err
	}

	ic.maybeRefreshBreakpoints(trimmed)

	return res, nil
}

// maybeRefreshBreakpoints implements: "any command starting with b, break,
// watch, del/delete, clear, disable, enable, or dprintf triggers a
// breakpoint-list refresh after the command completes."
func (ic *Interceptor) maybeRefreshBreakpoints(line string) {
	if ic.refresher == nil {
		return
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch strings.ToLower(fields[0]) {
	case "b", "break", "watch", "del", "delete", "clear", "disable", "enable", "dprintf":
		ic.refresher.ScheduleBreakpointRefresh()
	default:
		if strings.HasPrefix(strings.ToLower(fields[0]), "b") {
			ic.refresher.ScheduleBreakpointRefresh()
		}
	}
}

func (ic *Interceptor) handleHelp(tokens *commandline.Tokens) (Result, error) {
	topic, ok := tokens.Get()
	if !ok {
		return Result{Handled: true, Output: commandline.HelpSummary(ic.commands)}, nil
	}

	topic = strings.ToLower(topic)
	if topic == "mon" || topic == "monitor" {
		return Result{Handled: true, Forward: "monitor help"}, nil
	}

	if ic.helpTopics != nil {
		if page, ok := ic.helpTopics[topic]; ok {
			return Result{Handled: true, Output: page}, nil
		}
	}

	return Result{Handled: true, Output: fmt.Sprintf("no help available for %q", topic)}, nil
}

func (ic *Interceptor) handleInfo(tokens *commandline.Tokens) (Result, error) {
	topic, ok := tokens.Get()
	if !ok {
		return Result{Handled: true, Output: "usage: info [svd|trace|serial|register-name|...]"}, nil
	}

	switch strings.ToLower(topic) {
	case "svd", "trace", "serial":
		return Result{Handled: true, Output: fmt.Sprintf("%s: front-end info topic", topic)}, nil
	default:
		// an SVD register name: trigger -data-evaluate-expression and let
		// the caller overlay decoded bit-fields on the numeric result.
		return Result{Handled: true, Forward: fmt.Sprintf("-data-evaluate-expression %s", topic)}, nil
	}
}

func (ic *Interceptor) handleList(tokens *commandline.Tokens) (Result, error) {
	if ic.source == nil {
		return Result{Handled: true}, nil
	}

	arg, ok := tokens.Get()
	if !ok {
		return Result{Handled: true}, nil
	}

	switch arg {
	case "+":
		ic.source.MoveCursor(1)
	case "-":
		ic.source.MoveCursor(-1)
	default:
		if n, err := strconv.Atoi(arg); err == nil {
			ic.source.SetCursorLine(n)
			return Result{Handled: true}, nil
		}

		if file, line, ok := strings.Cut(arg, ":"); ok {
			ic.source.SetCursorFile(file)
			if n, err := strconv.Atoi(line); err == nil {
				ic.source.SetCursorLine(n)
			}
			return Result{Handled: true}, nil
		}

		if err := ic.source.SetCursorFunction(arg); err != nil {
			ic.source.SetCursorFile(arg)
		}
	}

	return Result{Handled: true}, nil
}

func (ic *Interceptor) handleFind(tokens *commandline.Tokens) (Result, error) {
	pattern, ok := tokens.Get()
	if ok {
		ic.lastFind = pattern
	} else {
		pattern = ic.lastFind
	}

	if ic.source == nil || pattern == "" {
		return Result{Handled: true}, nil
	}

	line, found := ic.source.FindFromCursor(pattern)
	if !found {
		return Result{Handled: true, Output: fmt.Sprintf("%q not found", pattern)}, nil
	}

	ic.source.SetCursorLine(line)
	return Result{Handled: true}, nil
}

func (ic *Interceptor) handleExamine(tokens *commandline.Tokens) (Result, error) {
	spec, _ := tokens.Get()
	expr, _ := tokens.Get()

	count := "1"
	format := "x"
	size := "w"
	if spec != "" {
		spec = strings.TrimPrefix(spec, "/")
		count, format, size = parseExamineSpec(spec)
	}

	if ic.refresher != nil {
		ic.refresher.ScheduleMemoryRefresh()
	}

	return Result{
		Handled: true,
		Forward: fmt.Sprintf("-data-read-memory %s %s %s 1 %s", expr, format, size, count),
	}, nil
}

// parseExamineSpec splits GDB's x command format spec (eg. "4xw") into
// count, format char and size char, defaulting any component it can't
// determine.
func parseExamineSpec(spec string) (count, format, size string) {
	count, format, size = "1", "x", "w"

	i := 0
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		i++
	}
	if i > 0 {
		count = spec[:i]
	}

	for _, c := range spec[i:] {
		switch c {
		case 'b', 'h', 'w', 'g':
			size = string(c)
		default:
			format = string(c)
		}
	}

	return count, format, size
}

func (ic *Interceptor) handleDisplay(tokens *commandline.Tokens) (Result, error) {
	spec, _ := tokens.Get()
	expr, ok := tokens.Get()
	if !ok {
		expr = spec
		spec = ""
	}

	forward := fmt.Sprintf("-var-create - * %s", expr)
	if spec != "" {
		forward = fmt.Sprintf("-var-create - * %s\n-var-set-format %s", expr, strings.TrimPrefix(spec, "/"))
	}

	return Result{Handled: true, Forward: forward}, nil
}

func (ic *Interceptor) handleUndisplay(tokens *commandline.Tokens) (Result, error) {
	n, _ := tokens.Get()
	if ic.watches == nil {
		return Result{Handled: true}, nil
	}

	name := "watch" + n
	ic.watches.Drop(name)
	return Result{Handled: true, Forward: fmt.Sprintf("-var-delete %s", name)}, nil
}

func (ic *Interceptor) handleFileLifecycle(keyword string, tokens *commandline.Tokens) (Result, error) {
	arg, _ := tokens.Get()

	switch keyword {
	case cmdFile:
		return Result{Handled: true, Forward: fmt.Sprintf("-file-exec-and-symbols %s", arg)}, nil
	case cmdReset:
		if strings.EqualFold(arg, "hard") {
			// spec.md §4.4's hard-reset path; the state machine performs
			// the actual process-level restart, the interceptor only
			// flags the request.
			return Result{Handled: true, Output: "#hard-reset"}, nil
		}
		if strings.EqualFold(arg, "load") {
			return Result{Handled: true, Output: "#reset-load"}, nil
		}
		return Result{Handled: true, Forward: "-exec-interrupt"}, nil
	case cmdLoad:
		if arg == "" {
			return Result{Handled: true, Output: "#reload"}, nil
		}
		return Result{Handled: true, Forward: fmt.Sprintf("-file-exec-and-symbols %s", arg)}, nil
	}

	return Result{}, nil
}

func (ic *Interceptor) handleTrace(tokens *commandline.Tokens) (Result, error) {
	return Result{Handled: true, Output: "#trace " + tokens.Remainder()}, nil
}

func (ic *Interceptor) handleSerial(tokens *commandline.Tokens) (Result, error) {
	return Result{Handled: true, Output: "#serial " + tokens.Remainder()}, nil
}

func (ic *Interceptor) handleDirectory(tokens *commandline.Tokens) (Result, error) {
	dir, _ := tokens.Get()
	return Result{Handled: true, Forward: fmt.Sprintf("-environment-directory %s", dir)}, nil
}

func (ic *Interceptor) handleAssembly(tokens *commandline.Tokens) (Result, error) {
	arg, _ := tokens.Get()
	on := !strings.EqualFold(arg, "off")

	if ic.source != nil {
		ic.source.SetAssembly(ic.source.CurrentFile(), on)
	}

	return Result{Handled: true}, nil
}
