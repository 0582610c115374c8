package mi_test

import (
	"testing"

	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/test"
)

func TestParseResult_simple(t *testing.T) {
	outcome, body, err := mi.ParseResult(`done,value="42"`)
	if test.ExpectedSuccess(t, err == nil) {
		test.ExpectEquality(t, outcome, "done")
		f, ok := body.Field("value")
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, f.String(), "42")
	}
}

func TestParseResult_nestedBreakpointTable(t *testing.T) {
	text := `done,BreakpointTable={nr_rows="1",nr_cols="6",body=[bkpt={number="1",type="breakpoint",disp="keep",enabled="y",addr="0x08000214",func="main",file="main.c",fullname="/src/main.c",line="42"}]}`

	outcome, body, err := mi.ParseResult(text)
	if !test.ExpectedSuccess(t, err == nil) {
		t.Fatalf("parse error: %v", err)
	}
	test.ExpectEquality(t, outcome, "done")

	table, ok := body.Field("BreakpointTable")
	test.ExpectSuccess(t, ok)

	bodyList, ok := table.Field("body")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(bodyList.List), 1)

	bkpt, ok := bodyList.List[0].Field("bkpt")
	test.ExpectSuccess(t, ok)

	num, ok := bkpt.Field("number")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, num.String(), "1")

	fn, ok := bkpt.Field("func")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, fn.String(), "main")
}

func TestParseResult_error(t *testing.T) {
	outcome, body, err := mi.ParseResult(`error,msg="No symbol \"foo\" in current context."`)
	if !test.ExpectedSuccess(t, err == nil) {
		t.Fatalf("parse error: %v", err)
	}
	test.ExpectEquality(t, outcome, "error")
	f, ok := body.Field("msg")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f.String(), `No symbol "foo" in current context.`)
}

func TestParseResult_running(t *testing.T) {
	outcome, _, err := mi.ParseResult(`running`)
	if !test.ExpectedSuccess(t, err == nil) {
		t.Fatalf("parse error: %v", err)
	}
	test.ExpectEquality(t, outcome, "running")
}

func TestParseAsync_stopped(t *testing.T) {
	text := `stopped,reason="breakpoint-hit",disp="keep",bkptno="1",frame={addr="0x08000214",func="main",args=[],file="main.c",line="42"},thread-id="1",stopped-threads="all"`

	class, body, err := mi.ParseAsync(text)
	if !test.ExpectedSuccess(t, err == nil) {
		t.Fatalf("parse error: %v", err)
	}
	test.ExpectEquality(t, class, "stopped")

	reason, ok := body.Field("reason")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reason.String(), "breakpoint-hit")

	frame, ok := body.Field("frame")
	test.ExpectSuccess(t, ok)
	fn, ok := frame.Field("func")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, fn.String(), "main")

	args, ok := frame.Field("args")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(args.List), 0)
}
