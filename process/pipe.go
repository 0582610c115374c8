// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package process supervises the GDB child process. It exposes a
// non-blocking read surface over the child's stdout/stderr pipes so that
// the single-threaded event loop (see package session) can poll for
// output once per frame without ever stalling on a read.
package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/bmdebug/bmdebug/logger"
)

// GracePeriod is how long Close() waits for the child to exit after a
// polite signal before escalating to a forced kill.
const GracePeriod = 2 * time.Second

// Pipe supervises a single child process and its three standard streams.
type Pipe struct {
	crit sync.Mutex

	name string
	args []string

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *nonBlockingReader
	stderr *nonBlockingReader

	exited  bool
	exitErr error
}

// Launch spawns name with args and returns a Pipe wired to its stdin,
// stdout and stderr. The child is started immediately; Launch fails if it
// cannot be executed at all.
func Launch(name string, args ...string) (*Pipe, error) {
	cmd := exec.Command(name, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("process: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("process: stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("process: stderr pipe: %w", err)
	}

	p := &Pipe{
		name:   name,
		args:   args,
		cmd:    cmd,
		stdin:  stdin,
		stdout: newNonBlockingReader(stdout),
		stderr: newNonBlockingReader(stderr),
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("process: spawn %s: %w", name, err)
	}

	go func() {
		err := cmd.Wait()
		p.crit.Lock()
		p.exited = true
		p.exitErr = err
		p.crit.Unlock()
		logger.Logf(logger.Allow, "process", "%s exited: %v", name, err)
	}()

	return p, nil
}

// Write appends text to the child's stdin. A partial write returns the
// number of bytes actually written; the caller is expected to loop on a
// short write.
func (p *Pipe) Write(text []byte) (int, error) {
	n, err := p.stdin.Write(text)
	if err != nil {
		return n, fmt.Errorf("process: write: %w", err)
	}
	return n, nil
}

// ReadStdout returns whatever bytes are currently available on stdout, up
// to max bytes, without blocking. An empty, nil-error result means there
// is nothing new right now.
func (p *Pipe) ReadStdout(max int) ([]byte, error) {
	return p.stdout.read(max)
}

// ReadStderr returns whatever bytes are currently available on stderr, up
// to max bytes, without blocking.
func (p *Pipe) ReadStderr(max int) ([]byte, error) {
	return p.stderr.read(max)
}

// Alive reports whether the child is still running.
func (p *Pipe) Alive() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return !p.exited
}

// Close terminates the child, first politely (closing stdin and sending
// an interrupt) and, if it has not exited within GracePeriod, forcibly.
// It always releases the pipe handles. Close is safe to call more than
// once.
func (p *Pipe) Close() error {
	p.crit.Lock()
	exited := p.exited
	p.crit.Unlock()

	if exited {
		p.stdin.Close()
		return nil
	}

	p.stdin.Close()
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Signal(interruptSignal())
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracePeriod)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for {
			p.crit.Lock()
			exited := p.exited
			p.crit.Unlock()
			if exited {
				close(done)
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(20 * time.Millisecond):
			}
		}
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		if p.cmd.Process != nil {
			_ = p.cmd.Process.Kill()
		}
		return fmt.Errorf("process: %s did not exit within grace period, killed", p.name)
	}
}

// Restart terminates the current child, if any, and launches a fresh one
// with the same name and arguments. The session's hard-reset path does not
// call it; that path re-enters Init, which launches a new Pipe.
func (p *Pipe) Restart() (*Pipe, error) {
	if err := p.Close(); err != nil {
		logger.Log(logger.Allow, "process", err)
	}
	return Launch(p.name, p.args...)
}

// nonBlockingReader drains an io.Reader on a background goroutine into a
// byte buffer that read() drains without ever blocking the caller.
type nonBlockingReader struct {
	crit sync.Mutex
	buf  bytes.Buffer
	err  error
}

func newNonBlockingReader(r io.Reader) *nonBlockingReader {
	n := &nonBlockingReader{}
	go n.pump(r)
	return n
}

func (n *nonBlockingReader) pump(r io.Reader) {
	chunk := make([]byte, 4096)
	for {
		c, err := r.Read(chunk)
		if c > 0 {
			n.crit.Lock()
			n.buf.Write(chunk[:c])
			n.crit.Unlock()
		}
		if err != nil {
			n.crit.Lock()
			n.err = err
			n.crit.Unlock()
			return
		}
	}
}

func (n *nonBlockingReader) read(max int) ([]byte, error) {
	n.crit.Lock()
	defer n.crit.Unlock()

	if n.buf.Len() == 0 {
		if n.err != nil && n.err != io.EOF {
			return nil, fmt.Errorf("process: %w", n.err)
		}
		return nil, nil
	}

	if max <= 0 || max > n.buf.Len() {
		max = n.buf.Len()
	}

	out := make([]byte, max)
	c, _ := n.buf.Read(out)
	return out[:c], nil
}
