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

package process_test

import (
	"testing"
	"time"

	"github.com/bmdebug/bmdebug/process"
	"github.com/bmdebug/bmdebug/test"
)

func TestLaunchEchoAndClose(t *testing.T) {
	p, err := process.Launch("cat")
	test.ExpectSuccess(t, err)
	if p == nil {
		t.Fatal("expected non-nil pipe")
	}

	test.ExpectSuccess(t, p.Alive())

	_, err = p.Write([]byte("hello\n"))
	test.ExpectSuccess(t, err)

	var got []byte
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		b, err := p.ReadStdout(1024)
		test.ExpectSuccess(t, err)
		got = append(got, b...)
		if len(got) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	test.ExpectEquality(t, string(got), "hello\n")

	err = p.Close()
	test.ExpectSuccess(t, err)
}

func TestLaunchMissingProgram(t *testing.T) {
	_, err := process.Launch("this-program-does-not-exist-anywhere")
	test.ExpectFailure(t, err)
}

func TestReadStdoutEmptyWhenNothingAvailable(t *testing.T) {
	p, err := process.Launch("cat")
	test.ExpectSuccess(t, err)
	defer p.Close()

	b, err := p.ReadStdout(1024)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(b), 0)
}
