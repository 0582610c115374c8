package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmdebug/bmdebug/script"
	"github.com/bmdebug/bmdebug/test"
)

func TestScribe_startSessionWritesInputOnCommit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.gdbscript")

	var scr script.Scribe
	test.ExpectSuccess(t, scr.StartSession(path) == nil)

	test.ExpectSuccess(t, scr.WriteInput("-exec-run") == nil)
	test.ExpectSuccess(t, scr.Commit() == nil)
	test.ExpectSuccess(t, scr.EndSession() == nil)

	contents, err := os.ReadFile(path)
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, string(contents), "-exec-run\n")
}

func TestScribe_startSessionFailsIfAlreadyActive(t *testing.T) {
	dir := t.TempDir()

	var scr script.Scribe
	test.ExpectSuccess(t, scr.StartSession(filepath.Join(dir, "one.gdbscript")) == nil)
	err := scr.StartSession(filepath.Join(dir, "two.gdbscript"))
	test.ExpectFailure(t, err == nil)
}

func TestScribe_startSessionFailsIfFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.gdbscript")
	test.ExpectSuccess(t, os.WriteFile(path, []byte("existing"), 0o644) == nil)

	var scr script.Scribe
	err := scr.StartSession(path)
	test.ExpectFailure(t, err == nil)
}

func TestScribe_rollbackDiscardsUncommittedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.gdbscript")

	var scr script.Scribe
	test.ExpectSuccess(t, scr.StartSession(path) == nil)
	test.ExpectSuccess(t, scr.WriteInput("-exec-step") == nil)
	scr.Rollback()
	test.ExpectSuccess(t, scr.Commit() == nil)
	test.ExpectSuccess(t, scr.EndSession() == nil)

	contents, err := os.ReadFile(path)
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, string(contents), "")
}

func TestScribe_playbackDepthSuppressesInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.gdbscript")

	var scr script.Scribe
	test.ExpectSuccess(t, scr.StartSession(path) == nil)

	test.ExpectSuccess(t, scr.StartPlayback() == nil)
	test.ExpectSuccess(t, scr.WriteInput("-break-list") == nil)
	test.ExpectSuccess(t, scr.EndPlayback() == nil)

	test.ExpectSuccess(t, scr.WriteInput("-exec-continue") == nil)
	test.ExpectSuccess(t, scr.Commit() == nil)
	test.ExpectSuccess(t, scr.EndSession() == nil)

	contents, err := os.ReadFile(path)
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, string(contents), "-exec-continue\n")
}

func TestScribe_writeOutputIsPrefixedAndSplitByLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.gdbscript")

	var scr script.Scribe
	test.ExpectSuccess(t, scr.StartSession(path) == nil)

	test.ExpectSuccess(t, scr.WriteInput("-exec-run") == nil)
	scr.WriteOutput("^running\n*running,thread-id=\"all\"")
	test.ExpectSuccess(t, scr.Commit() == nil)
	test.ExpectSuccess(t, scr.EndSession() == nil)

	contents, err := os.ReadFile(path)
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, string(contents), "-exec-run\n>> ^running\n>> *running,thread-id=\"all\"\n")
}

func TestScribe_inactiveScribeIsANoop(t *testing.T) {
	var scr script.Scribe
	test.ExpectFailure(t, scr.IsActive())
	test.ExpectSuccess(t, scr.WriteInput("-exec-run") == nil)
	test.ExpectSuccess(t, scr.Commit() == nil)
	test.ExpectSuccess(t, scr.EndSession() == nil)
}
