package scene

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/neapu/LearnOpenGL/shader"
	"github.com/neapu/LearnOpenGL/window"
)

// Rectangle is the second example: the same orange fill as Triangle, drawn
// as two triangles over four shared vertices through an element buffer.
type Rectangle struct {
	shader *shader.Shader
	vao    uint32
	vbo    uint32
	ebo    uint32
}

func NewRectangle() *Rectangle { return &Rectangle{} }

func (s *Rectangle) Init(win *window.Window) error {
	s.shader = shader.New(win.GL())
	if err := s.shader.Compile(basicVertexSrc, orangeFragmentSrc); err != nil {
		return err
	}

	vertices := []float32{
		0.5, 0.5, 0.0, // top right
		0.5, -0.5, 0.0, // bottom right
		-0.5, -0.5, 0.0, // bottom left
		-0.5, 0.5, 0.0, // top left
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
	// The element buffer binding is part of the VAO state; it stays bound.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (s *Rectangle) HandleEvent(ev window.Event) { applyEvent(ev) }

func (s *Rectangle) Render() {
	clear()

	s.shader.Use()
	gl.BindVertexArray(s.vao)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (s *Rectangle) Cleanup() {
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
