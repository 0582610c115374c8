// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package gui

// FeatureReq is used to request the setting of a gui attribute, e.g.
// resizing a panel or toggling full-screen.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq.
// See commentary for the defined FeatureReq values for the underlying
// type.
type FeatureReqData interface{}

// SessionState indicates to the GUI which phase of the debug session
// (session/govern.State, collapsed to what the GUI needs to know) is
// current, so it can alter presentation - e.g. greying out exec controls
// outside Stopped, showing a spinner through the attach chain.
type SessionState int

// List of valid session states the GUI is notified of.
const (
	StateInitialising SessionState = iota
	StateAttaching
	StateRunning
	StateStopped
	StateQuit
)

// List of valid feature requests. The argument must be of the type named
// in the comment or the interface{} type conversion will fail.
const (
	// ReqState notifies the GUI of the session's current high-level state.
	ReqState FeatureReq = "ReqState" // SessionState

	// ReqSetVisibility sets whether the main window is shown.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// ReqFullScreen puts the GUI into full-screen mode (no window border,
	// content sized to the monitor) or back out of it.
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// ReqWindowSize sets the main window's width/height in pixels, per
	// spec.md §6's persisted "window size" field.
	ReqWindowSize FeatureReq = "ReqWindowSize" // [2]int32

	// ReqSplitterRatio sets one of the named splitter ratios persisted in
	// spec.md §6's Global config (source/disassembly pane, main/terminal
	// pane).
	ReqSplitterRatio FeatureReq = "ReqSplitterRatio" // SplitterRatio

	// ReqPanelExpand expands or collapses a named side panel.
	ReqPanelExpand FeatureReq = "ReqPanelExpand" // PanelState

	// ReqFontSize sets the point size (and optional font family names) of
	// the GUI's text, per spec.md §6's `-f=SIZE[,STD[,MONO]]` CLI option.
	ReqFontSize FeatureReq = "ReqFontSize" // FontSpec
)

// SplitterRatio names one of the persisted splitter positions and its new
// fractional position (0.0-1.0).
type SplitterRatio struct {
	Name  string
	Ratio float64
}

// PanelState names one of the GUI's side panels and whether it should be
// expanded.
type PanelState struct {
	Name     string
	Expanded bool
	Size     int
}

// FontSpec is the parsed form of the `-f` CLI flag: point size plus
// optional standard/monospace font family overrides.
type FontSpec struct {
	PointSize int
	Standard  string
	Mono      string
}
