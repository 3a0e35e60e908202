package graphics

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Native returns the GL implementation backed by the go-gl bindings. The
// caller must have a current context and a loaded function table.
func Native() GL { return nativeGL{} }

type nativeGL struct{}

var _ GL = nativeGL{}

func (nativeGL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (nativeGL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (nativeGL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (nativeGL) GetShaderiv(shader uint32, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (nativeGL) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (nativeGL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (nativeGL) CreateProgram() uint32 { return gl.CreateProgram() }

func (nativeGL) AttachShader(program uint32, shader uint32) { gl.AttachShader(program, shader) }

func (nativeGL) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (nativeGL) GetProgramiv(program uint32, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (nativeGL) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (nativeGL) UseProgram(program uint32) { gl.UseProgram(program) }

func (nativeGL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (nativeGL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (nativeGL) Uniform1i(location int32, v0 int32) { gl.Uniform1i(location, v0) }

func (nativeGL) Uniform1f(location int32, v0 float32) { gl.Uniform1f(location, v0) }

func (nativeGL) Uniform2f(location int32, v0, v1 float32) { gl.Uniform2f(location, v0, v1) }

func (nativeGL) Uniform3f(location int32, v0, v1, v2 float32) { gl.Uniform3f(location, v0, v1, v2) }

func (nativeGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (nativeGL) UniformMatrix4fv(location int32, count int32, transpose bool, value *float32) {
	gl.UniformMatrix4fv(location, count, transpose, value)
}

func (nativeGL) GenTextures(n int32, textures *uint32) { gl.GenTextures(n, textures) }

func (nativeGL) BindTexture(target uint32, texture uint32) { gl.BindTexture(target, texture) }

func (nativeGL) TexParameteri(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (nativeGL) TexImage2D(target uint32, level int32, internalformat int32, width int32,
	height int32, border int32, format uint32, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(target, level, internalformat, width, height, border, format, xtype, ptr)
}

func (nativeGL) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (nativeGL) ActiveTexture(texture uint32) { gl.ActiveTexture(texture) }

func (nativeGL) DeleteTextures(n int32, textures *uint32) { gl.DeleteTextures(n, textures) }
