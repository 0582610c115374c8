// Package devtools holds development-only tooling with no runtime role
// in the front-end itself: a graphviz dump of the state machine's
// transition graph, for documentation and debugging. Grounded on the
// teacher's own use of bradleyjkemp/memviz
// (debugger/terminal/commandline/parser_test.go's
// `memviz.Map(f, cmds)` dumping a *commandline.Commands graph) to dump an
// arbitrary Go value's structure as a .dot file.
package devtools

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/bmdebug/bmdebug/session/govern"
)

// DumpBootSequence writes a graphviz dump of the boot/attach chain
// (session/govern.State's ordering) to w, in the same manner the teacher
// dumps its command-template parse tree: `memviz.Map(w, v)` against
// whatever value best represents the structure under inspection.
func DumpBootSequence(w io.Writer) {
	type transition struct {
		From string
		To   string
	}

	var edges []transition
	for _, from := range govern.BootSequence() {
		to, ok := govern.Next(from)
		if !ok {
			continue
		}
		edges = append(edges, transition{From: from.String(), To: to.String()})
	}

	memviz.Map(w, &edges)
}
