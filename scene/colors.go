package scene

import (
	"path/filepath"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/neapu/LearnOpenGL/assets"
	"github.com/neapu/LearnOpenGL/shader"
	"github.com/neapu/LearnOpenGL/window"
)

// Colors is the third example: a rectangle with a color per corner,
// interpolated across the surface, with shaders loaded from asset files.
type Colors struct {
	shader *shader.Shader
	vao    uint32
	vbo    uint32
	ebo    uint32
}

func NewColors() *Colors { return &Colors{} }

func (s *Colors) Init(win *window.Window) error {
	dir, err := assets.Dir()
	if err != nil {
		return err
	}

	s.shader = shader.New(win.GL())
	if err := s.shader.LoadFiles(
		filepath.Join(dir, "shaders", "colors.vert"),
		filepath.Join(dir, "shaders", "colors.frag"),
	); err != nil {
		return err
	}

	// x, y, z, r, g, b per vertex.
	vertices := []float32{
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.0, 1.0, 1.0, 0.0,
	}
	indices := []uint32{
		0, 1, 3,
		1, 2, 3,
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.GenBuffers(1, &s.ebo)

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (s *Colors) HandleEvent(ev window.Event) { applyEvent(ev) }

func (s *Colors) Render() {
	clear()

	s.shader.Use()
	gl.BindVertexArray(s.vao)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (s *Colors) Cleanup() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.ebo != 0 {
		gl.DeleteBuffers(1, &s.ebo)
		s.ebo = 0
	}
	if s.shader != nil {
		s.shader.Release()
	}
}
