// Package main is bmdebug's entry point: the CLI defined in spec.md §6
// (`bmdebug [options] [elf-file]`), wiring the State Machine (package
// session), the Command Interceptor, the Source Model cursor (package
// view), and a terminal or GUI front-end together, then driving the
// input loop (package engine) until the user quits.
//
// Grounded on the teacher's gopher2600.go: a main() that owns the OS
// thread and services a GUI's per-frame Service() call (required because
// SDL demands main-thread ownership), communicating with a launch()
// goroutine that does the actual argument parsing and wiring via a small
// mainSync request/response channel set. bmdebug has only one execution
// mode (there is no RUN/PLAY/DEBUG/DISASM/PERFORMANCE/REGRESS/VERSION
// mode switch - just "run the debugger"), so launch() is considerably
// smaller than the teacher's.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"
)

// mainSync is the communication channel set between main() (which owns
// the OS thread) and launch() (which does everything else).
type mainSync struct {
	state    chan stateRequest
	gui      chan guiControl
	guiError chan error
}

type stateReq string

const (
	// reqQuit asks main() to end the program. args, if non-nil, is the
	// process exit status (int).
	reqQuit stateReq = "QUIT"

	// reqNoIntSig asks main() to stop handling SIGINT itself, because the
	// input loop now owns Ctrl+C (spec.md §5's double-Ctrl+C rule).
	reqNoIntSig stateReq = "NOINTSIG"

	// reqCreateGUI asks main() to run a guiCreate function on the main OS
	// thread and report the result back over sync.gui/sync.guiError.
	reqCreateGUI stateReq = "CREATEGUI"
)

type stateRequest struct {
	req  stateReq
	args any
}

// guiCreate is paired with reqCreateGUI: the function main() must call,
// on the main OS thread, to construct the GUI.
type guiCreate func() (guiControl, error)

// guiControl is what main()'s service loop needs from a GUI backend.
type guiControl interface {
	// Destroy releases any resources the GUI backend holds.
	Destroy() error

	// Service runs one frame's worth of GUI work. Must only be called
	// from the main OS thread.
	Service()
}

func main() {
	sync := &mainSync{
		state:    make(chan stateRequest),
		gui:      make(chan guiControl),
		guiError: make(chan error),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	const noGuiSleep = 5 * time.Millisecond

	done := false
	var g guiControl
	for !done {
		select {
		case <-intChan:
			fmt.Print("\r")
			done = true

		case req := <-sync.state:
			switch req.req {
			case reqQuit:
				done = true
				if g != nil {
					_ = g.Destroy()
				}
				if req.args != nil {
					if v, ok := req.args.(int); ok {
						exitVal = v
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)

			case reqCreateGUI:
				if g != nil {
					_ = g.Destroy()
				}

				create := req.args.(guiCreate)
				created, err := create()
				if err != nil {
					sync.guiError <- err
					g = nil
				} else {
					g = created
					sync.gui <- g
				}
			}

		default:
			if g != nil {
				g.Service()
			} else {
				time.Sleep(noGuiSleep)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}
