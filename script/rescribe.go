package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmdebug/bmdebug/terminal"
)

const commentLine = "#"

// isComment reports whether line is prefixed with commentLine (ignoring
// leading whitespace).
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe represents a previously scribed (or handwritten) script. It
// implements terminal.Input and so can be fed directly into the front-end's
// input loop in place of a real terminal.
type Rescribe struct {
	scriptFile string
	lines      []string
	lineCt     int
}

// RescribeScript is the preferred way to initialise a Rescribe: it loads
// and pre-processes the named script file, discarding blank lines and
// comments (and, by virtue of never having recorded them, any scribed
// output lines - see Scribe.WriteOutput).
func RescribeScript(scriptfile string) (*Rescribe, error) {
	buffer, err := os.ReadFile(scriptfile)
	if err != nil {
		return nil, fmt.Errorf("script: file not available: %w", err)
	}

	scr := &Rescribe{scriptFile: scriptfile}

	l := strings.Split(string(buffer), "\n")
	scr.lines = make([]string, 0, len(l))

	for i := range l {
		l[i] = strings.TrimSpace(l[i])
		if len(l[i]) > 0 && !isComment(l[i]) && !strings.HasPrefix(l[i], outputDelimiter) {
			scr.lines = append(scr.lines, l[i])
		}
	}

	scr.lineCt = 0

	return scr, nil
}

// ScriptEnd is the format string of the sentinel error returned by
// TermRead() once the script is exhausted.
const ScriptEnd = "end of script (%s)"

// TermRead implements terminal.Input.
func (scr *Rescribe) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if scr.lineCt > len(scr.lines)-1 {
		return "", fmt.Errorf(ScriptEnd, scr.scriptFile)
	}

	ln := scr.lines[scr.lineCt]
	scr.lineCt++

	return ln, nil
}

// TermReadCheck implements terminal.Input.
func (scr *Rescribe) TermReadCheck() bool {
	return scr.lineCt <= len(scr.lines)-1
}

// IsRealTerminal implements terminal.Input.
func (scr *Rescribe) IsRealTerminal() bool {
	return false
}
