// Package engine implements the interactive front-end's input loop: the
// per-frame cycle of stepping the session state machine, reading a line
// from the terminal once GDB is at its prompt, running it past the
// Command Interceptor, and forwarding whatever the interceptor doesn't
// claim straight to GDB (spec.md §5's scheduling model).
//
// Grounded on the teacher's debugger/inputloop.go (termRead/parseInput,
// one user line read per prompt, split on interceptor outcome) reworked
// around session.Session's Step()/AtPrompt() frame model rather than the
// VCS emulator's CPU-quantum loop, and around interceptor.Result's
// Handled/Forward/Output outcomes rather than a monolithic per-command
// switch.
package engine
