// Package gui is an abstraction layer for real GUI implementations. It
// defines the Events that can be passed from the GUI to the front-end
// engine (keyboard/mouse input, margin clicks in the source view) and the
// FeatureReqs the engine can issue to the GUI (window geometry, splitter
// ratios, panel state, session state). Implementations - see
// gui/bmimgui - convert their specific signals and requests to and from
// these abstractions.
package gui
