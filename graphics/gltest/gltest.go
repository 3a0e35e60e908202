// Package gltest provides an in-memory graphics.GL implementation for
// exercising shader and texture code without a GPU context. The fake hands
// out object names, tracks which are still allocated, and records the calls
// tests care about. Compile and link failures are scripted through the
// FailCompile and FailLink fields.
package gltest

import (
	"unsafe"

	"github.com/neapu/LearnOpenGL/graphics"
)

// UniformWrite is one recorded uniform upload. Scalar and vector writes fill
// Floats or Ints; matrix writes fill Floats with the column-major values.
type UniformWrite struct {
	Location int32
	Ints     []int32
	Floats   []float32
}

// TextureState is the recorded state of one texture object.
type TextureState struct {
	Params    map[uint32]int32
	Width     int32
	Height    int32
	Format    uint32
	Internal  int32
	Pixels    []byte
	Mipmapped bool
}

type shaderObj struct {
	xtype  uint32
	source string
	ok     bool
	log    string
}

type programObj struct {
	attached []uint32
	ok       bool
	log      string
}

// GL is the recording fake. The zero value is not usable; call New.
type GL struct {
	// FailCompile maps a stage type (graphics.VertexShader or
	// graphics.FragmentShader) to the info log its compilation fails with.
	FailCompile map[uint32]string
	// FailLink, when non-empty, makes every program link fail with this log.
	FailLink string
	// Uniforms maps uniform names to locations. Names not present resolve
	// to -1, like the real API.
	Uniforms map[string]int32

	// CreateShaderCalls counts CreateShader invocations.
	CreateShaderCalls int
	// GenTextureCalls counts GenTextures invocations.
	GenTextureCalls int
	// CompiledSources records, per stage type, the source handed to each
	// CompileShader call in order.
	CompiledSources map[uint32][]string
	// UniformLookups records every GetUniformLocation name in call order.
	UniformLookups []string
	// UniformWrites records every uniform upload in call order.
	UniformWrites []UniformWrite
	// UseCalls records every UseProgram argument.
	UseCalls []uint32
	// DeletedPrograms records program names passed to DeleteProgram,
	// ignoring the zero name.
	DeletedPrograms []uint32
	// DeletedTextures records texture names deleted, ignoring zero names.
	DeletedTextures []uint32

	nextName uint32
	shaders  map[uint32]*shaderObj
	programs map[uint32]*programObj
	textures map[uint32]*TextureState
	bound    map[uint32]uint32
	active   uint32
}

var _ graphics.GL = (*GL)(nil)

// New returns an empty fake with no scripted failures.
func New() *GL {
	return &GL{
		FailCompile:     map[uint32]string{},
		Uniforms:        map[string]int32{},
		CompiledSources: map[uint32][]string{},
		shaders:         map[uint32]*shaderObj{},
		programs:        map[uint32]*programObj{},
		textures:        map[uint32]*TextureState{},
		bound:           map[uint32]uint32{},
	}
}

// LiveShaders returns the number of shader objects not yet deleted.
func (g *GL) LiveShaders() int { return len(g.shaders) }

// LivePrograms returns the number of program objects not yet deleted.
func (g *GL) LivePrograms() int { return len(g.programs) }

// LiveTextures returns the number of texture objects not yet deleted.
func (g *GL) LiveTextures() int { return len(g.textures) }

// Live returns the total number of allocated objects; zero means no leaks.
func (g *GL) Live() int { return g.LiveShaders() + g.LivePrograms() + g.LiveTextures() }

// Bound returns the texture name bound to target, zero if none.
func (g *GL) Bound(target uint32) uint32 { return g.bound[target] }

// ActiveUnit returns the last unit passed to ActiveTexture.
func (g *GL) ActiveUnit() uint32 { return g.active }

// Texture returns the recorded state of a texture object.
func (g *GL) Texture(name uint32) (*TextureState, bool) {
	state, ok := g.textures[name]
	return state, ok
}

func (g *GL) newName() uint32 {
	g.nextName++
	return g.nextName
}

func (g *GL) CreateShader(xtype uint32) uint32 {
	g.CreateShaderCalls++
	name := g.newName()
	g.shaders[name] = &shaderObj{xtype: xtype}
	return name
}

func (g *GL) ShaderSource(shader uint32, source string) {
	if obj := g.shaders[shader]; obj != nil {
		obj.source = source
	}
}

func (g *GL) CompileShader(shader uint32) {
	obj := g.shaders[shader]
	if obj == nil {
		return
	}
	g.CompiledSources[obj.xtype] = append(g.CompiledSources[obj.xtype], obj.source)
	if logText, fail := g.FailCompile[obj.xtype]; fail {
		obj.ok = false
		obj.log = logText
		return
	}
	obj.ok = true
}

func (g *GL) GetShaderiv(shader uint32, pname uint32, params *int32) {
	if pname != graphics.CompileStatus {
		return
	}
	*params = 0
	if obj := g.shaders[shader]; obj != nil && obj.ok {
		*params = 1
	}
}

func (g *GL) GetShaderInfoLog(shader uint32) string {
	if obj := g.shaders[shader]; obj != nil {
		return obj.log
	}
	return ""
}

func (g *GL) DeleteShader(shader uint32) {
	if shader == 0 {
		return
	}
	delete(g.shaders, shader)
}

func (g *GL) CreateProgram() uint32 {
	name := g.newName()
	g.programs[name] = &programObj{}
	return name
}

func (g *GL) AttachShader(program uint32, shader uint32) {
	if obj := g.programs[program]; obj != nil {
		obj.attached = append(obj.attached, shader)
	}
}

func (g *GL) LinkProgram(program uint32) {
	obj := g.programs[program]
	if obj == nil {
		return
	}
	switch {
	case g.FailLink != "":
		obj.ok = false
		obj.log = g.FailLink
	case !g.stagesCompiled(obj):
		obj.ok = false
		obj.log = "attached stages missing or not compiled"
	default:
		obj.ok = true
	}
}

func (g *GL) stagesCompiled(obj *programObj) bool {
	if len(obj.attached) < 2 {
		return false
	}
	for _, name := range obj.attached {
		sh := g.shaders[name]
		if sh == nil || !sh.ok {
			return false
		}
	}
	return true
}

func (g *GL) GetProgramiv(program uint32, pname uint32, params *int32) {
	if pname != graphics.LinkStatus {
		return
	}
	*params = 0
	if obj := g.programs[program]; obj != nil && obj.ok {
		*params = 1
	}
}

func (g *GL) GetProgramInfoLog(program uint32) string {
	if obj := g.programs[program]; obj != nil {
		return obj.log
	}
	return ""
}

func (g *GL) UseProgram(program uint32) {
	g.UseCalls = append(g.UseCalls, program)
}

func (g *GL) DeleteProgram(program uint32) {
	if program == 0 {
		return
	}
	if _, ok := g.programs[program]; ok {
		delete(g.programs, program)
		g.DeletedPrograms = append(g.DeletedPrograms, program)
	}
}

func (g *GL) GetUniformLocation(program uint32, name string) int32 {
	g.UniformLookups = append(g.UniformLookups, name)
	if loc, ok := g.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (g *GL) Uniform1i(location int32, v0 int32) {
	g.UniformWrites = append(g.UniformWrites, UniformWrite{Location: location, Ints: []int32{v0}})
}

func (g *GL) Uniform1f(location int32, v0 float32) {
	g.UniformWrites = append(g.UniformWrites, UniformWrite{Location: location, Floats: []float32{v0}})
}

func (g *GL) Uniform2f(location int32, v0, v1 float32) {
	g.UniformWrites = append(g.UniformWrites, UniformWrite{Location: location, Floats: []float32{v0, v1}})
}

func (g *GL) Uniform3f(location int32, v0, v1, v2 float32) {
	g.UniformWrites = append(g.UniformWrites, UniformWrite{Location: location, Floats: []float32{v0, v1, v2}})
}

func (g *GL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	g.UniformWrites = append(g.UniformWrites, UniformWrite{Location: location, Floats: []float32{v0, v1, v2, v3}})
}

func (g *GL) UniformMatrix4fv(location int32, count int32, transpose bool, value *float32) {
	values := unsafe.Slice(value, 16*int(count))
	g.UniformWrites = append(g.UniformWrites, UniformWrite{
		Location: location,
		Floats:   append([]float32(nil), values...),
	})
}

func (g *GL) GenTextures(n int32, textures *uint32) {
	g.GenTextureCalls++
	names := unsafe.Slice(textures, int(n))
	for i := range names {
		names[i] = g.newName()
		g.textures[names[i]] = &TextureState{Params: map[uint32]int32{}}
	}
}

func (g *GL) BindTexture(target uint32, texture uint32) {
	g.bound[target] = texture
}

func (g *GL) TexParameteri(target uint32, pname uint32, param int32) {
	if state := g.textures[g.bound[target]]; state != nil {
		state.Params[pname] = param
	}
}

func (g *GL) TexImage2D(target uint32, level int32, internalformat int32, width int32,
	height int32, border int32, format uint32, xtype uint32, pixels []byte) {
	state := g.textures[g.bound[target]]
	if state == nil {
		return
	}
	state.Width = width
	state.Height = height
	state.Format = format
	state.Internal = internalformat
	state.Pixels = append([]byte(nil), pixels...)
}

func (g *GL) GenerateMipmap(target uint32) {
	if state := g.textures[g.bound[target]]; state != nil {
		state.Mipmapped = true
	}
}

func (g *GL) ActiveTexture(texture uint32) {
	g.active = texture
}

func (g *GL) DeleteTextures(n int32, textures *uint32) {
	names := unsafe.Slice(textures, int(n))
	for _, name := range names {
		if name == 0 {
			continue
		}
		if _, ok := g.textures[name]; ok {
			delete(g.textures, name)
			g.DeletedTextures = append(g.DeletedTextures, name)
		}
	}
}
