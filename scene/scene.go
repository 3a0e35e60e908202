// Package scene contains the example scenes, one per step of the sequence:
// a triangle, an indexed rectangle, a per-vertex colored rectangle and a
// textured rectangle. Each scene owns its GPU objects from Init to Cleanup
// and issues one draw call per frame.
package scene

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/neapu/LearnOpenGL/window"
)

// Scene is one rendering example driven by the main loop. Init runs once
// with the window's context current, HandleEvent once per polled event,
// Render once per frame, Cleanup once on shutdown. Cleanup must tolerate a
// partially initialized scene.
type Scene interface {
	Init(win *window.Window) error
	HandleEvent(ev window.Event)
	Render()
	Cleanup()
}

// applyEvent handles the events every scene reacts to the same way.
func applyEvent(ev window.Event) {
	if resize, ok := ev.(window.ResizeEvent); ok {
		gl.Viewport(0, 0, int32(resize.Width), int32(resize.Height))
	}
}

// clear paints the background the whole sequence uses.
func clear() {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
