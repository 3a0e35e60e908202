// Package shader compiles and links OpenGL shader programs and exposes the
// uniform setters the example scenes use.
package shader

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/neapu/LearnOpenGL/graphics"
)

// infoLogLimit bounds the compiler diagnostics carried in errors.
const infoLogLimit = 1024

// Shader owns a linked GPU program built from a vertex and a fragment stage.
// A zero program handle means no valid program; Compile or LoadFiles must
// succeed before Use has any effect.
type Shader struct {
	gl      graphics.GL
	program uint32
}

// New returns an empty Shader that allocates its GPU objects through g.
func New(g graphics.GL) *Shader {
	return &Shader{gl: g}
}

// ID returns the program handle, zero when no program is linked.
func (s *Shader) ID() uint32 { return s.program }

// IsValid reports whether the Shader holds a linked program.
func (s *Shader) IsValid() bool { return s.program != 0 }

// Compile builds and links a program from vertex and fragment source text.
// A program already held by the Shader is released first. On failure the
// Shader is left invalid with no stage or program objects still allocated.
func (s *Shader) Compile(vertexSrc, fragmentSrc string) error {
	s.Release()

	vertex, err := s.compileStage(graphics.VertexShader, vertexSrc)
	if err != nil {
		return err
	}
	fragment, err := s.compileStage(graphics.FragmentShader, fragmentSrc)
	if err != nil {
		s.gl.DeleteShader(vertex)
		return err
	}

	program := s.gl.CreateProgram()
	s.gl.AttachShader(program, vertex)
	s.gl.AttachShader(program, fragment)
	s.gl.LinkProgram(program)

	// The stage objects are retained inside a successfully linked program
	// and useless after a failed link, so they go either way.
	s.gl.DeleteShader(vertex)
	s.gl.DeleteShader(fragment)

	var status int32
	s.gl.GetProgramiv(program, graphics.LinkStatus, &status)
	if status == 0 {
		infoLog := truncateLog(s.gl.GetProgramInfoLog(program))
		s.gl.DeleteProgram(program)
		return fmt.Errorf("failed to link shader program: %s", infoLog)
	}

	s.program = program
	return nil
}

// LoadFiles reads vertex and fragment source files and compiles them. Both
// files are read before compilation starts, so an unreadable file never
// allocates GPU objects.
func (s *Shader) LoadFiles(vertexPath, fragmentPath string) error {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return fmt.Errorf("failed to read vertex shader file: %w", err)
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return fmt.Errorf("failed to read fragment shader file: %w", err)
	}
	return s.Compile(string(vertexSrc), string(fragmentSrc))
}

func (s *Shader) compileStage(stage uint32, source string) (uint32, error) {
	shader := s.gl.CreateShader(stage)
	s.gl.ShaderSource(shader, source)
	s.gl.CompileShader(shader)

	var status int32
	s.gl.GetShaderiv(shader, graphics.CompileStatus, &status)
	if status == 0 {
		infoLog := truncateLog(s.gl.GetShaderInfoLog(shader))
		s.gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %s", stageName(stage), infoLog)
	}
	return shader, nil
}

func stageName(stage uint32) string {
	switch stage {
	case graphics.VertexShader:
		return "vertex"
	case graphics.FragmentShader:
		return "fragment"
	}
	return "unknown"
}

func truncateLog(infoLog string) string {
	if len(infoLog) > infoLogLimit {
		return infoLog[:infoLogLimit]
	}
	return infoLog
}

// Use makes the program current. It is a no-op while the Shader is invalid.
func (s *Shader) Use() {
	if s.program != 0 {
		s.gl.UseProgram(s.program)
	}
}

// Release deletes the program if one is held. Safe to call repeatedly.
func (s *Shader) Release() {
	if s.program != 0 {
		s.gl.DeleteProgram(s.program)
		s.program = 0
	}
}

// location resolves a uniform name against the linked program. The lookup
// runs on every call; -1 means the program is invalid or does not declare
// the name.
func (s *Shader) location(name string) int32 {
	if s.program == 0 {
		return -1
	}
	return s.gl.GetUniformLocation(s.program, name)
}

// SetBool sets an int uniform to 0 or 1. Like all setters, writes to names
// the program does not declare are silently dropped.
func (s *Shader) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	if loc := s.location(name); loc != -1 {
		s.gl.Uniform1i(loc, v)
	}
}

// SetInt sets an int or sampler uniform.
func (s *Shader) SetInt(name string, value int32) {
	if loc := s.location(name); loc != -1 {
		s.gl.Uniform1i(loc, value)
	}
}

// SetFloat sets a float uniform.
func (s *Shader) SetFloat(name string, value float32) {
	if loc := s.location(name); loc != -1 {
		s.gl.Uniform1f(loc, value)
	}
}

// SetVec2 sets a vec2 uniform.
func (s *Shader) SetVec2(name string, x, y float32) {
	if loc := s.location(name); loc != -1 {
		s.gl.Uniform2f(loc, x, y)
	}
}

// SetVec3 sets a vec3 uniform.
func (s *Shader) SetVec3(name string, x, y, z float32) {
	if loc := s.location(name); loc != -1 {
		s.gl.Uniform3f(loc, x, y, z)
	}
}

// SetVec4 sets a vec4 uniform.
func (s *Shader) SetVec4(name string, x, y, z, w float32) {
	if loc := s.location(name); loc != -1 {
		s.gl.Uniform4f(loc, x, y, z, w)
	}
}

// SetMat4 sets a mat4 uniform from a column-major matrix.
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	if loc := s.location(name); loc != -1 {
		s.gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}
