package refresh_test

import (
	"testing"

	"github.com/bmdebug/bmdebug/refresh"
	"github.com/bmdebug/bmdebug/test"
)

func TestScheduler_priorityOrder(t *testing.T) {
	var s refresh.Scheduler

	s.Schedule(refresh.Memory)
	s.Schedule(refresh.Breakpoints)
	s.Schedule(refresh.SWO)

	b, ok := s.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, refresh.SWO)

	s.Clear(refresh.SWO)
	b, ok = s.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, refresh.Breakpoints)

	s.Clear(refresh.Breakpoints)
	b, ok = s.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, refresh.Memory)

	s.Clear(refresh.Memory)
	test.ExpectSuccess(t, s.Idle())
	_, ok = s.Next()
	test.ExpectFailure(t, ok)
}

func TestScheduler_pending(t *testing.T) {
	var s refresh.Scheduler
	test.ExpectFailure(t, s.Pending(refresh.Locals))
	s.Schedule(refresh.Locals)
	test.ExpectSuccess(t, s.Pending(refresh.Locals))
}
