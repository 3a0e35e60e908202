package scene

import (
	"path/filepath"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/neapu/LearnOpenGL/assets"
	"github.com/neapu/LearnOpenGL/shader"
	"github.com/neapu/LearnOpenGL/texture"
	"github.com/neapu/LearnOpenGL/window"
)

// Texture is the last example: the rectangle sampled from a checkerboard
// image, with shaders loaded from asset files and the sampler and transform
// uniforms set once after linking.
type Texture struct {
	shader  *shader.Shader
	texture *texture.Texture
	vao     uint32
	vbo     uint32
	ebo     uint32
}

func NewTexture() *Texture { return &Texture{} }

func (s *Texture) Init(win *window.Window) error {
	dir, err := assets.Dir()
	if err != nil {
		return err
	}

	s.shader = shader.New(win.GL())
	if err := s.shader.LoadFiles(
		filepath.Join(dir, "shaders", "texture.vert"),
		filepath.Join(dir, "shaders", "texture.frag"),
	); err != nil {
		return err
	}

	s.texture, err = texture.Load(win.GL(), filepath.Join(dir, "textures", "checker.png"))
	if err != nil {
		return err
	}

	// x, y, z, s, t per vertex.
	vertices := []float32{
		0.5, 0.5, 0.0, 1.0, 1.0,
		0.5, -0.5, 0.0, 1.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 0.0,
		-0.5, 0.5, 0.0, 0.0, 1.0,
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
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	s.shader.Use()
	s.shader.SetInt("uTexture", 0)
	s.shader.SetMat4("uTransform", mgl32.Ident4())
	return nil
}

func (s *Texture) HandleEvent(ev window.Event) { applyEvent(ev) }

func (s *Texture) Render() {
	clear()

	s.shader.Use()
	s.texture.Bind(0)
	gl.BindVertexArray(s.vao)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (s *Texture) Cleanup() {
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
	if s.texture != nil {
		s.texture.Release()
	}
	if s.shader != nil {
		s.shader.Release()
	}
}
