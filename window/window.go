// Package window wraps GLFW window and OpenGL context setup for the example
// scenes: one resizable window, a 3.3 core profile context with vsync, and a
// polled queue of the few events the example scenes react to.
package window

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/neapu/LearnOpenGL/graphics"
)

// glInitialized flips the first time a context loads the OpenGL function
// table. The table is process-wide, so windows created later skip the load.
var glInitialized bool

// Config holds the window creation parameters.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Window owns a native window and the OpenGL context bound to it.
type Window struct {
	window *glfw.Window
	width  int
	height int
	events []Event
}

// Init initializes the windowing subsystem. Must be called from the main
// thread before any window is created.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// Terminate shuts down the windowing subsystem. Must be called from the main
// thread after all windows are destroyed.
func Terminate() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

// New creates a window with an OpenGL 3.3 core profile context, makes the
// context current on the calling thread, loads the function table if this is
// the first context of the process, and enables vsync.
func New(cfg Config) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	win.MakeContextCurrent()
	if err := loadGL(); err != nil {
		win.Destroy()
		return nil, err
	}
	glfw.SwapInterval(1)

	w := &Window{window: win}
	w.width, w.height = win.GetFramebufferSize()

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		log.Printf("Window resized to %dx%d", width, height)
		w.events = append(w.events, ResizeEvent{Width: width, Height: height})
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		log.Printf("Window close requested")
		w.events = append(w.events, CloseEvent{})
	})
	win.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.SetShouldClose(true)
		}
	})

	return w, nil
}

// loadGL loads the OpenGL function table once per process. A context must be
// current on the calling thread.
func loadGL() error {
	if glInitialized {
		return nil
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load OpenGL function pointers: %w", err)
	}
	glInitialized = true
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("GLSL version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	log.Printf("OpenGL vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Printf("OpenGL renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// GL returns the OpenGL interface for this window's context.
func (w *Window) GL() graphics.GL { return graphics.Native() }

// PollEvents pumps the platform event queue and returns the events that
// arrived since the previous call. The returned slice is reused; it is only
// valid until the next call.
func (w *Window) PollEvents() []Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

// ShouldClose reports whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SwapBuffers presents the back buffer; with vsync on this blocks until the
// next display refresh.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Size returns the framebuffer size in pixels, tracked across resizes.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Destroy releases the window. Safe to call repeatedly.
func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}
