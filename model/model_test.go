package model_test

import (
	"testing"

	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/model"
	"github.com/bmdebug/bmdebug/test"
)

func parseBody(t *testing.T, text string) mi.Value {
	t.Helper()
	_, body, err := mi.ParseResult(text)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return body
}

func TestBreakpoints_extractTable(t *testing.T) {
	body := parseBody(t, `done,BreakpointTable={nr_rows="2",body=[bkpt={number="1",type="breakpoint",disp="keep",enabled="y",addr="0x1000",func="main",file="main.c",line="10",original-location="main"},bkpt={number="2",type="breakpoint",disp="keep",enabled="n",addr="0x2000",func="handler",file="isr.c",line="20",original-location="isr.c:20"}]}`)

	table, ok := body.Field("BreakpointTable")
	test.ExpectSuccess(t, ok)

	rows := model.ExtractBreakpointTable(table)
	test.ExpectEquality(t, len(rows), 2)
	test.ExpectSuccess(t, rows[0].AtFunctionEntry)
	test.ExpectFailure(t, rows[1].AtFunctionEntry)
	test.ExpectFailure(t, rows[1].Enabled)

	var bp model.Breakpoints
	bp.Replace(rows)
	found, ok := bp.ByNumber(2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, found.Function, "handler")
}

func TestLocals_scopeAndChange(t *testing.T) {
	var locals model.Locals

	locals.Update(parseBody(t, `done,variables=[{name="i",value="0"},{name="total",value="10"}]`))
	all := locals.All()
	test.ExpectEquality(t, len(all), 2)

	locals.Update(parseBody(t, `done,variables=[{name="i",value="1"}]`))
	all = locals.All()
	test.ExpectEquality(t, len(all), 1)
	test.ExpectEquality(t, all[0].Name, "i")
	test.ExpectSuccess(t, all[0].Changed)
}

func TestWatches_createAndUpdate(t *testing.T) {
	var watches model.Watches

	w := watches.Create("counter", parseBody(t, `done,name="watch1",numchild="0",value="0",type="int"`))
	test.ExpectEquality(t, w.Name, "watch1")

	watches.Update(parseBody(t, `done,changelist=[{name="watch1",value="1",in_scope="true",type_changed="false"}]`))
	all := watches.All()
	test.ExpectEquality(t, len(all), 1)
	test.ExpectEquality(t, all[0].Value, "1")
	test.ExpectSuccess(t, all[0].Changed)
	test.ExpectSuccess(t, all[0].InScope)
}

func TestRegisters_update(t *testing.T) {
	regs := model.NewRegisters(model.CortexMRegisterNames)
	regs.Update(parseBody(t, `done,register-values=[{number="0",value="0x1"},{number="15",value="0x08000214"}]`))

	r0, ok := regs.ByName("r0")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r0.Value, "0x1")

	pc, ok := regs.ByName("pc")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pc.Value, "0x08000214")
}

func TestMemory_update(t *testing.T) {
	var mem model.Memory
	mem.Update(parseBody(t, `done,addr="0x20000000",total-bytes="4",memory=[{addr="0x20000000",data=["0x01","0x02","0x03","0x04"]}]`))

	rows := mem.Rows()
	test.ExpectEquality(t, len(rows), 1)
	test.ExpectEquality(t, len(rows[0].Bytes), 4)
	test.ExpectEquality(t, rows[0].Bytes[1], byte(2))
}
