// Package bmimgui is the View Renderer Glue (spec.md §1's "GUI widget
// toolkit" external collaborator): a concrete gui.GUI backend built on
// Dear ImGui (github.com/inkyblackness/imgui-go) and SDL2
// (github.com/veandco/go-sdl2), the same pairing the teacher's
// gui/sdlimgui uses. Cut down from the teacher's television-focused
// platform (no joystick/gamepad handling, no CRT shader pipeline, no
// metapixel overlay) to the minimum a single debugger window needs:
// window lifecycle, mouse/keyboard forwarding into imgui's IO, and a
// buffer swap each frame.
package bmimgui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/bmdebug/bmdebug/logger"
)

const applicationTitle = "bmdebug"

// platform owns the SDL window and forwards its state into imgui's IO
// every frame, grounded on the teacher's gui/sdlimgui/platform.go
// (newPlatform/newFrame/postRender/destroy), stripped of everything
// specific to rendering a television signal.
type platform struct {
	window *sdl.Window
	mode   sdl.DisplayMode

	frameDuration time.Duration
	renderStart   time.Time
}

// newPlatform creates the SDL window and GL context and returns a
// platform ready to have frames rendered into it. The window starts
// hidden; callers show it via setVisible once the GUI is ready.
func newPlatform(width, height int32) (*platform, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("bmimgui: sdl: %w", err)
	}

	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3); err != nil {
		return nil, fmt.Errorf("bmimgui: sdl: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2); err != nil {
		return nil, fmt.Errorf("bmimgui: sdl: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE); err != nil {
		return nil, fmt.Errorf("bmimgui: sdl: %w", err)
	}

	plt := &platform{}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("bmimgui: sdl: %w", err)
	}
	plt.mode = mode

	if width <= 0 {
		width = int32(float32(mode.W) * 0.80)
	}
	if height <= 0 {
		height = int32(float32(mode.H) * 0.80)
	}

	plt.window, err = sdl.CreateWindow(applicationTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("bmimgui: sdl: %w", err)
	}

	glContext, err := plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("bmimgui: sdl: %w", err)
	}
	if err := plt.window.GLMakeCurrent(glContext); err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("bmimgui: sdl: %w", err)
	}

	plt.frameDuration = time.Duration(1000000000/int64(mode.RefreshRate)) * time.Nanosecond
	plt.renderStart = time.Now()

	logger.Logf(logger.Allow, "bmimgui", "window created: %dx%d", width, height)

	return plt, nil
}

func (plt *platform) destroy() error {
	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()
	return nil
}

func (plt *platform) windowSize() (width, height int32) {
	w, h := plt.window.GetSize()
	return w, h
}

func (plt *platform) setWindowSize(width, height int32) {
	plt.window.SetSize(width, height)
}

func (plt *platform) setVisible(visible bool) {
	if visible {
		plt.window.Show()
	} else {
		plt.window.Hide()
	}
}

func (plt *platform) setFullScreen(fullScreen bool) {
	if fullScreen {
		plt.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		plt.window.SetFullscreen(0)
	}
}

// newFrame forwards SDL's current display size and mouse state into
// imgui's IO, ready for a render pass.
func (plt *platform) newFrame() {
	w, h := plt.windowSize()
	imgui.CurrentIO().SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	x, y, state := sdl.GetMouseState()
	imgui.CurrentIO().SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		imgui.CurrentIO().SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}
}

// postRender swaps the GL buffer, closing out one render pass.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}
