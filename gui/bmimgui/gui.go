package bmimgui

import (
	"fmt"
	"sync"

	"github.com/bmdebug/bmdebug/gui"
)

// GUI is the concrete gui.GUI backend wrapping platform (SDL2+imgui). All
// feature state is read/written under a mutex since SetFeature may be
// called from a different goroutine than the render loop that owns
// newFrame/postRender.
type GUI struct {
	crit sync.Mutex

	plt *platform

	visible    bool
	fullScreen bool
	state      gui.SessionState
	splitters  map[string]float64
	panels     map[string]gui.PanelState
	fontSize   int
}

// NewGUI creates the platform window (hidden) and returns a GUI ready to
// receive feature requests. width/height seed the initial window size,
// typically loaded from config.Global per spec.md §6.
func NewGUI(width, height int32) (*GUI, error) {
	plt, err := newPlatform(width, height)
	if err != nil {
		return nil, err
	}

	return &GUI{
		plt:       plt,
		splitters: make(map[string]float64),
		panels:    make(map[string]gui.PanelState),
	}, nil
}

// Destroy releases the underlying window and GL context.
func (g *GUI) Destroy() error {
	return g.plt.destroy()
}

// NewFrame begins a render pass (see platform.newFrame).
func (g *GUI) NewFrame() {
	g.plt.newFrame()
}

// PostRender ends a render pass (see platform.postRender).
func (g *GUI) PostRender() {
	g.plt.postRender()
}

// Service runs one complete frame (NewFrame then PostRender). It must
// only be called from the goroutine that owns the OS thread the window
// was created on (SDL's requirement), matching the main-thread Service()
// loop the teacher's own entry point drives its GUI with.
func (g *GUI) Service() {
	g.NewFrame()
	g.PostRender()
}

// SetFeature implements gui.GUI.
func (g *GUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	g.crit.Lock()
	defer g.crit.Unlock()

	switch request {
	case gui.ReqState:
		state, ok := args[0].(gui.SessionState)
		if !ok {
			return fmt.Errorf("bmimgui: %s: unexpected argument type %T", request, args[0])
		}
		g.state = state
		return nil

	case gui.ReqSetVisibility:
		visible, ok := args[0].(bool)
		if !ok {
			return fmt.Errorf("bmimgui: %s: unexpected argument type %T", request, args[0])
		}
		g.visible = visible
		g.plt.setVisible(visible)
		return nil

	case gui.ReqFullScreen:
		full, ok := args[0].(bool)
		if !ok {
			return fmt.Errorf("bmimgui: %s: unexpected argument type %T", request, args[0])
		}
		g.fullScreen = full
		g.plt.setFullScreen(full)
		return nil

	case gui.ReqWindowSize:
		size, ok := args[0].([2]int32)
		if !ok {
			return fmt.Errorf("bmimgui: %s: unexpected argument type %T", request, args[0])
		}
		g.plt.setWindowSize(size[0], size[1])
		return nil

	case gui.ReqSplitterRatio:
		ratio, ok := args[0].(gui.SplitterRatio)
		if !ok {
			return fmt.Errorf("bmimgui: %s: unexpected argument type %T", request, args[0])
		}
		g.splitters[ratio.Name] = ratio.Ratio
		return nil

	case gui.ReqPanelExpand:
		panel, ok := args[0].(gui.PanelState)
		if !ok {
			return fmt.Errorf("bmimgui: %s: unexpected argument type %T", request, args[0])
		}
		g.panels[panel.Name] = panel
		return nil

	case gui.ReqFontSize:
		spec, ok := args[0].(gui.FontSpec)
		if !ok {
			return fmt.Errorf("bmimgui: %s: unexpected argument type %T", request, args[0])
		}
		g.fontSize = spec.PointSize
		return nil
	}

	return gui.ErrUnsupportedFeature(request)
}

// SetFeatureNoError implements gui.GUI, discarding any error SetFeature
// would have returned.
func (g *GUI) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	_ = g.SetFeature(request, args...)
}

// GetFeature implements gui.GUI.
func (g *GUI) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	g.crit.Lock()
	defer g.crit.Unlock()

	switch request {
	case gui.ReqState:
		return g.state, nil
	case gui.ReqSetVisibility:
		return g.visible, nil
	case gui.ReqFullScreen:
		return g.fullScreen, nil
	case gui.ReqWindowSize:
		w, h := g.plt.windowSize()
		return [2]int32{w, h}, nil
	}

	return nil, gui.ErrUnsupportedFeature(request)
}
