// Package graphics defines the subset of OpenGL entry points used by the
// shader and texture helpers. Keeping the surface behind an interface lets
// those helpers run against the real bindings in the application and against
// a recording fake in tests, where no GL context exists.
package graphics

const (
	// VertexShader is the shader object type for the vertex stage.
	VertexShader = 0x8B31
	// FragmentShader is the shader object type for the fragment stage.
	FragmentShader = 0x8B30

	// CompileStatus queries whether a shader object compiled successfully.
	CompileStatus = 0x8B81
	// LinkStatus queries whether a program object linked successfully.
	LinkStatus = 0x8B82

	// Texture2D is the texture target for 2D textures.
	Texture2D = 0x0DE1

	// TextureWrapS selects the wrapping function for texture coordinate S.
	TextureWrapS = 0x2802
	// TextureWrapT selects the wrapping function for texture coordinate T.
	TextureWrapT = 0x2803
	// TextureMinFilter selects the texture minification filter.
	TextureMinFilter = 0x2801
	// TextureMagFilter selects the texture magnification filter.
	TextureMagFilter = 0x2800

	// Repeat tiles the texture outside the [0,1] coordinate range.
	Repeat = 0x2901
	// Linear selects linear filtering.
	Linear = 0x2601
	// LinearMipmapLinear selects trilinear filtering across mipmap levels.
	LinearMipmapLinear = 0x2703

	// RGBA is a pixel format representing red/green/blue/alpha.
	RGBA = 0x1908
	// RGBA8 is the internal texture format for 8 bits per channel RGBA.
	RGBA8 = 0x8058
	// UnsignedByte is a pixel data type indicating 8-bit unsigned values.
	UnsignedByte = 0x1401

	// Texture0 is the first texture unit; unit n is Texture0 + n.
	Texture0 = 0x84C0
)

// GL is the call subset the helpers need. Implementations operate on the GL
// context current for the calling thread.
type GL interface {
	// Shader operations
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Program operations
	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32, params *int32)
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// Uniform operations
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v0 int32)
	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, count int32, transpose bool, value *float32)

	// Texture operations
	GenTextures(n int32, textures *uint32)
	BindTexture(target uint32, texture uint32)
	TexParameteri(target uint32, pname uint32, param int32)
	// TexImage2D uploads a two-dimensional texture image. The pixels slice
	// may be nil to allocate storage without uploading data.
	TexImage2D(target uint32, level int32, internalformat int32, width int32,
		height int32, border int32, format uint32, xtype uint32, pixels []byte)
	GenerateMipmap(target uint32)
	ActiveTexture(texture uint32)
	DeleteTextures(n int32, textures *uint32)
}
