package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window and GL context to create.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	// Hidden creates an invisible window for offscreen rendering.
	Hidden bool
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
// It tracks held keys for frame-based polling.
type Window struct {
	*glfw.Window
	held map[glfw.Key]bool
}

// OpenWindow initializes GLFW, creates the window, makes its context current
// and loads GL. GLFW must run on the main thread: lock it with
// runtime.LockOSThread before calling.
func OpenWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	w := &Window{Window: win, held: make(map[glfw.Key]bool)}
	win.SetKeyCallback(w.keyCallback)
	return w, nil
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}

// Held reports whether key is currently held down.
func (w *Window) Held(key glfw.Key) bool {
	return w.held[key]
}

// Axis returns the arrow-key direction as -1, 0 or 1 per axis (Y up).
func (w *Window) Axis() (dx, dy float32) {
	if w.Held(glfw.KeyLeft) {
		dx--
	}
	if w.Held(glfw.KeyRight) {
		dx++
	}
	if w.Held(glfw.KeyDown) {
		dy--
	}
	if w.Held(glfw.KeyUp) {
		dy++
	}
	return dx, dy
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press, glfw.Repeat:
		w.held[key] = true
	case glfw.Release:
		w.held[key] = false
	}
	if key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
	}
}
