package scene

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/neapu/LearnOpenGL/shader"
	"github.com/neapu/LearnOpenGL/window"
)

// basicVertexSrc passes the position attribute through unchanged; the
// triangle and rectangle scenes share it with the orange fragment stage.
const basicVertexSrc = `#version 330 core
layout (location = 0) in vec3 aPos;

void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const orangeFragmentSrc = `#version 330 core
out vec4 FragColor;

void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// Triangle is the first example: one orange triangle drawn from a
// three-vertex buffer with shaders compiled from embedded source.
type Triangle struct {
	shader *shader.Shader
	vao    uint32
	vbo    uint32
}

func NewTriangle() *Triangle { return &Triangle{} }

func (s *Triangle) Init(win *window.Window) error {
	s.shader = shader.New(win.GL())
	if err := s.shader.Compile(basicVertexSrc, orangeFragmentSrc); err != nil {
		return err
	}

	vertices := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (s *Triangle) HandleEvent(ev window.Event) { applyEvent(ev) }

func (s *Triangle) Render() {
	clear()

	s.shader.Use()
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (s *Triangle) Cleanup() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.shader != nil {
		s.shader.Release()
	}
}
