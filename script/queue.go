package script

import (
	"fmt"
	"os"
	"strings"
)

// Line is one normalised command pulled off a Queue.
type Line struct {
	Entry string
	Batch bool
}

// Queue normalises raw input into individual commands and dishes them out
// one at a time. Used by interactive terminals as well as loaded scripts,
// so that both sources of commands are subject to the same normalisation
// (line-ending conversion, semicolon-separated commands on one line,
// comment stripping).
type Queue struct {
	lines []Line
}

// More returns true if there are commands still waiting in the queue.
func (q *Queue) More() bool {
	return len(q.lines) > 0
}

// Next returns the next command in the queue.
func (q *Queue) Next() (Line, bool) {
	if len(q.lines) > 0 {
		ln := q.lines[0]
		q.lines = q.lines[1:]
		return ln, true
	}
	return Line{}, false
}

// Push splits input into commands, appends them to the queue and returns
// the first of them.
func (q *Queue) Push(input string) (Line, error) {
	q.push(input, false)
	if ln, ok := q.Next(); ok {
		return ln, nil
	}
	return Line{}, fmt.Errorf("script: empty input")
}

func (q *Queue) push(input string, batch bool) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	// commands can be separated by semi-colons as well as newlines -
	// normalise semi-colons to newlines before splitting
	input = strings.ReplaceAll(input, ";", "\n")

	for _, s := range strings.Split(input, "\n") {
		if len(s) > 0 && !strings.HasPrefix(s, commentLine) {
			q.lines = append(q.lines, Line{Entry: s, Batch: batch})
		}
	}
}

// Load reads a script file and appends its commands to the queue as a
// batch.
func (q *Queue) Load(filename string) error {
	s, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("script: no such file: %s", filename)
		}
		return fmt.Errorf("script: %w", err)
	}

	q.push(string(s), true)

	return nil
}
