package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmdebug/bmdebug/script"
	"github.com/bmdebug/bmdebug/terminal"
	"github.com/bmdebug/bmdebug/test"
)

func writeScript(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replay.gdbscript")
	test.ExpectSuccess(t, os.WriteFile(path, []byte(contents), 0o644) == nil)
	return path
}

func TestRescribeScript_skipsBlankLinesCommentsAndOutput(t *testing.T) {
	path := writeScript(t, "# a comment\n\n-break-insert main\n>> ^done\n-exec-run\n")

	scr, err := script.RescribeScript(path)
	test.ExpectSuccess(t, err == nil)
	test.ExpectFailure(t, scr.IsRealTerminal())

	line, err := scr.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, line, "-break-insert main")

	line, err = scr.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, line, "-exec-run")
}

func TestRescribeScript_readPastEndReturnsScriptEnd(t *testing.T) {
	path := writeScript(t, "-exec-run\n")

	scr, err := script.RescribeScript(path)
	test.ExpectSuccess(t, err == nil)

	_, err = scr.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err == nil)

	test.ExpectFailure(t, scr.TermReadCheck())

	_, err = scr.TermRead(terminal.Prompt{}, nil)
	test.ExpectFailure(t, err == nil)
}

func TestRescribeScript_missingFileIsAnError(t *testing.T) {
	_, err := script.RescribeScript(filepath.Join(t.TempDir(), "does-not-exist.gdbscript"))
	test.ExpectFailure(t, err == nil)
}
