package devtools_test

import (
	"bytes"
	"testing"

	"github.com/bmdebug/bmdebug/internal/devtools"
	"github.com/bmdebug/bmdebug/test"
)

func TestDumpBootSequence_producesNonEmptyDot(t *testing.T) {
	var buf bytes.Buffer
	devtools.DumpBootSequence(&buf)
	test.ExpectSuccess(t, buf.Len() > 0)
}
