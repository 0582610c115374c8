package view

import (
	"fmt"
	"strings"

	"github.com/bmdebug/bmdebug/source"
)

// Cursor implements interceptor.SourceView over a *source.Files: it adds
// the "current file, current line" state a `list`/`find` command needs,
// which package source itself has no opinion about.
type Cursor struct {
	fs *source.Files

	file string
	line int
}

// NewCursor returns a Cursor with no file selected. The first
// SetCursorFile/SetCursorLine/SetCursorFunction call establishes one.
func NewCursor(fs *source.Files) *Cursor {
	return &Cursor{fs: fs, line: 1}
}

// MoveCursor implements interceptor.SourceView: `list +`/`list -` move by
// one source line, clamped so the cursor never goes above line 1.
func (c *Cursor) MoveCursor(delta int) {
	c.line += delta
	if c.line < 1 {
		c.line = 1
	}
}

// SetCursorLine implements interceptor.SourceView.
func (c *Cursor) SetCursorLine(line int) {
	if line < 1 {
		line = 1
	}
	c.line = line
}

// SetCursorFile implements interceptor.SourceView. Selecting a file
// unknown to the Source Model still records the name - GDB may report the
// file via a later -file-list-exec-source-files reply, at which point
// subsequent line lookups will start succeeding.
func (c *Cursor) SetCursorFile(file string) {
	c.file = file
}

// SetCursorFunction implements interceptor.SourceView. Resolving a
// function name to a file/line requires GDB's own symbol table, which
// this front-end does not duplicate (spec.md §1 treats symbol resolution
// as GDB's responsibility, reached via MI commands rather than a local
// index) - so this always reports that it cannot resolve the name,
// letting the interceptor's `list FUNC` handler fall back to treating the
// argument as a filename instead, exactly as its fallback is written to
// expect.
func (c *Cursor) SetCursorFunction(function string) error {
	return fmt.Errorf("view: function lookup requires gdb: %s", function)
}

// CurrentFile implements interceptor.SourceView.
func (c *Cursor) CurrentFile() string {
	return c.file
}

// FindFromCursor implements interceptor.SourceView: a forward, wrapping,
// case-sensitive substring search over the current file's displayed
// lines, starting immediately after the cursor.
func (c *Cursor) FindFromCursor(pattern string) (int, bool) {
	f, ok := c.fs.ByName(c.file)
	if !ok {
		return 0, false
	}

	lines := f.Lines()
	if len(lines) == 0 {
		return 0, false
	}

	for i := 1; i <= len(lines); i++ {
		ln := lines[(c.line+i-1)%len(lines)]
		if ln.Hidden {
			continue
		}
		if strings.Contains(ln.Text, pattern) {
			return ln.SourceLine, true
		}
	}

	return 0, false
}

// SetAssembly implements interceptor.SourceView.
func (c *Cursor) SetAssembly(file string, on bool) {
	f, ok := c.fs.ByName(file)
	if !ok {
		return
	}
	f.SetAssemblyShown(on)
}
