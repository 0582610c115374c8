package script

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// outputDelimiter prefixes each line of recorded terminal output, so a
// rescribed script can tell output lines (for the human reader) apart from
// commands to replay.
const outputDelimiter = ">> "

// Scribe captures the command session to a script file as it happens, so
// it can later be rescribed. It can be used again after a StartSession()/
// EndSession() cycle. IsActive() reports whether a script is currently
// being captured, but it is safe not to check first - every method is a
// no-op when there is no active session.
type Scribe struct {
	file       *os.File
	scriptfile string

	// depth of nested script rescribing while this scribe is recording -
	// input read from a rescribed script is not written back out, only
	// input typed directly by the user.
	playbackDepth int

	inputLine  string
	outputLine string
}

// IsActive returns true if a script is currently being captured.
func (scr Scribe) IsActive() bool {
	return scr.file != nil
}

// StartSession begins scribing to a new script file. It is an error for
// the file to already exist.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return fmt.Errorf("script: scribe already active")
	}

	scr.scriptfile = scriptfile

	_, err := os.Stat(scriptfile)
	if os.IsNotExist(err) {
		scr.file, err = os.Create(scriptfile)
		if err != nil {
			return fmt.Errorf("script: cannot create new script file: %w", err)
		}
	} else {
		return fmt.Errorf("script: file already exists: %s", scriptfile)
	}

	return nil
}

// EndSession closes the current scribe session, if any.
func (scr *Scribe) EndSession() (rerr error) {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
		scr.outputLine = ""
	}()

	defer func() {
		err := scr.file.Close()
		if err != nil {
			rerr = fmt.Errorf("script: scribe: %w", err)
		}
	}()

	return scr.Commit()
}

// StartPlayback indicates that a rescribed script has begun running nested
// within this scribing session - its input should not be written back out.
func (scr *Scribe) StartPlayback() error {
	if !scr.IsActive() {
		return nil
	}

	err := scr.Commit()
	if err != nil {
		return err
	}

	scr.playbackDepth++

	return nil
}

// EndPlayback indicates that a nested rescribed script has finished.
func (scr *Scribe) EndPlayback() error {
	if !scr.IsActive() {
		return nil
	}

	err := scr.Commit()
	if err != nil {
		return err
	}

	scr.playbackDepth--

	return nil
}

// Rollback discards calls to WriteInput()/WriteOutput() since the last
// Commit().
func (scr *Scribe) Rollback() {
	if !scr.IsActive() {
		return
	}

	scr.inputLine = ""
	scr.outputLine = ""
}

// WriteInput records a line of user input, to be written on the next
// Commit(). A no-op while a nested script is being rescribed.
func (scr *Scribe) WriteInput(command string) error {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return nil
	}

	err := scr.Commit()
	if err != nil {
		return err
	}

	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}

	return nil
}

// WriteOutput records terminal output, to be written on the next Commit().
// Output is included purely for a human reader of the script file; it
// plays no part when rescribing. Multi-line output is split so every line
// gets its own outputDelimiter prefix.
func (scr *Scribe) WriteOutput(output string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	if output == "" {
		return
	}

	for _, line := range strings.Split(output, "\n") {
		scr.outputLine = fmt.Sprintf("%s%s%s\n", scr.outputLine, outputDelimiter, line)
	}
}

// Commit flushes the most recent WriteInput()/WriteOutput() calls to the
// script file.
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.inputLine = ""
		scr.outputLine = ""
	}()

	if scr.inputLine != "" {
		n, err := io.WriteString(scr.file, scr.inputLine)
		if err != nil {
			return fmt.Errorf("script: scribe: %w", err)
		}
		if n != len(scr.inputLine) {
			return fmt.Errorf("script: scribe output truncated")
		}
	}

	if scr.outputLine != "" {
		n, err := io.WriteString(scr.file, scr.outputLine)
		if err != nil {
			return fmt.Errorf("script: scribe: %w", err)
		}
		if n != len(scr.outputLine) {
			return fmt.Errorf("script: scribe output truncated")
		}
	}

	return nil
}
