package gui_test

import (
	"testing"

	"github.com/bmdebug/bmdebug/gui"
	"github.com/bmdebug/bmdebug/test"
)

func TestStub_everyMethodReportsUnsupported(t *testing.T) {
	var s gui.Stub

	err := s.SetFeature(gui.ReqFullScreen, true)
	test.ExpectFailure(t, err == nil)

	_, err = s.GetFeature(gui.ReqWindowSize)
	test.ExpectFailure(t, err == nil)

	// SetFeatureNoError must not panic even though the feature is
	// unsupported.
	s.SetFeatureNoError(gui.ReqFullScreen, true)
}
