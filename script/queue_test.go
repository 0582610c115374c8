package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmdebug/bmdebug/script"
	"github.com/bmdebug/bmdebug/test"
)

func TestQueue_pushSplitsOnSemicolonsAndNewlines(t *testing.T) {
	var q script.Queue

	ln, err := q.Push("-break-insert main; -exec-run\n-exec-continue")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, ln.Entry, "-break-insert main")
	test.ExpectFailure(t, ln.Batch)

	ln, ok := q.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ln.Entry, " -exec-run")

	ln, ok = q.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ln.Entry, "-exec-continue")

	test.ExpectFailure(t, q.More())
}

func TestQueue_pushStripsComments(t *testing.T) {
	var q script.Queue
	_, err := q.Push("# a comment\n-exec-run")
	test.ExpectSuccess(t, err == nil)

	ln, ok := q.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ln.Entry, "-exec-run")
}

func TestQueue_pushNormalisesLineEndings(t *testing.T) {
	var q script.Queue
	_, err := q.Push("-exec-run\r\n-exec-continue\r-exec-finish")
	test.ExpectSuccess(t, err == nil)

	ln, ok := q.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ln.Entry, "-exec-continue")

	ln, ok = q.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ln.Entry, "-exec-finish")
}

func TestQueue_pushEmptyInputIsAnError(t *testing.T) {
	var q script.Queue
	_, err := q.Push("")
	test.ExpectFailure(t, err == nil)
}

func TestQueue_loadMarksLinesAsBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.gdbscript")
	test.ExpectSuccess(t, os.WriteFile(path, []byte("-break-insert main\n-exec-run\n"), 0o644) == nil)

	var q script.Queue
	test.ExpectSuccess(t, q.Load(path) == nil)

	ln, ok := q.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ln.Entry, "-break-insert main")
	test.ExpectSuccess(t, ln.Batch)
}

func TestQueue_loadMissingFileIsAnError(t *testing.T) {
	var q script.Queue
	err := q.Load(filepath.Join(t.TempDir(), "does-not-exist.gdbscript"))
	test.ExpectFailure(t, err == nil)
}
