package hover_test

import (
	"testing"

	"github.com/bmdebug/bmdebug/hover"
	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/record"
	"github.com/bmdebug/bmdebug/test"
)

type fakeSender struct {
	sent []string
	fail bool
}

func (f *fakeSender) Send(cmd string) error {
	if f.fail {
		return errFake
	}
	f.sent = append(f.sent, cmd)
	return nil
}

var errFake = fakeErr("fake send failure")

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

func TestFormat_integerLiteral(t *testing.T) {
	test.ExpectEquality(t, hover.Format("42"), "42 [0x2a]")
	test.ExpectEquality(t, hover.Format("0"), "0 [0x0]")
}

func TestFormat_nonInteger(t *testing.T) {
	test.ExpectEquality(t, hover.Format("hello"), "hello")
	test.ExpectEquality(t, hover.Format("{a = 1, b = 2}"), "{a = 1, b = 2}")
}

func TestResolver_hoverIssuesAndCaches(t *testing.T) {
	store := record.NewStore()
	sender := &fakeSender{}
	r := hover.New(sender, store)

	sent, err := r.Hover("g_counter")
	test.ExpectSuccess(t, err == nil)
	test.ExpectSuccess(t, sent)
	test.ExpectEquality(t, sender.sent[0], "-data-evaluate-expression g_counter")

	_, have := r.Value()
	test.ExpectFailure(t, have)

	store.Append(mi.Result, 0, `done,value="42"`)
	updated := r.Poll()
	test.ExpectSuccess(t, updated)

	v, have := r.Value()
	test.ExpectSuccess(t, have)
	test.ExpectEquality(t, v, "42 [0x2a]")
}

func TestResolver_sameSymbolIsNoop(t *testing.T) {
	store := record.NewStore()
	sender := &fakeSender{}
	r := hover.New(sender, store)

	_, err := r.Hover("g_counter")
	test.ExpectSuccess(t, err == nil)
	store.Append(mi.Result, 0, `done,value="42"`)
	r.Poll()

	sent, err := r.Hover("g_counter")
	test.ExpectSuccess(t, err == nil)
	test.ExpectFailure(t, sent)
	test.ExpectEquality(t, len(sender.sent), 1)
}

func TestResolver_newSymbolClearsCacheAndSendsAgain(t *testing.T) {
	store := record.NewStore()
	sender := &fakeSender{}
	r := hover.New(sender, store)

	_, _ = r.Hover("g_counter")
	store.Append(mi.Result, 0, `done,value="42"`)
	r.Poll()

	sent, err := r.Hover("g_flags")
	test.ExpectSuccess(t, err == nil)
	test.ExpectSuccess(t, sent)

	_, have := r.Value()
	test.ExpectFailure(t, have)
	test.ExpectEquality(t, len(sender.sent), 2)
}

func TestResolver_emptySymbolClearsWithoutSending(t *testing.T) {
	store := record.NewStore()
	sender := &fakeSender{}
	r := hover.New(sender, store)

	_, _ = r.Hover("g_counter")
	store.Append(mi.Result, 0, `done,value="42"`)
	r.Poll()

	sent, err := r.Hover("")
	test.ExpectSuccess(t, err == nil)
	test.ExpectFailure(t, sent)
	test.ExpectEquality(t, len(sender.sent), 1)

	_, have := r.Value()
	test.ExpectFailure(t, have)
}
