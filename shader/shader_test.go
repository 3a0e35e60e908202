package shader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neapu/LearnOpenGL/graphics"
	"github.com/neapu/LearnOpenGL/graphics/gltest"
	"github.com/neapu/LearnOpenGL/shader"
)

const (
	vertexSrc = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() { gl_Position = vec4(aPos, 1.0); }
`
	fragmentSrc = `#version 330 core
out vec4 FragColor;
void main() { FragColor = vec4(1.0, 0.5, 0.2, 1.0); }
`
)

func compileValid(t *testing.T, g *gltest.GL) *shader.Shader {
	t.Helper()
	s := shader.New(g)
	require.NoError(t, s.Compile(vertexSrc, fragmentSrc))
	return s
}

func TestCompileValidSources(t *testing.T) {
	g := gltest.New()
	s := compileValid(t, g)

	assert.True(t, s.IsValid())
	assert.NotZero(t, s.ID())
	assert.Equal(t, 1, g.LivePrograms())
	assert.Zero(t, g.LiveShaders(), "stage objects must be released after linking")
}

func TestCompileVertexError(t *testing.T) {
	g := gltest.New()
	g.FailCompile[graphics.VertexShader] = "0:2(1): error: syntax error, unexpected NEW_IDENTIFIER"
	s := shader.New(g)

	err := s.Compile("botched source", fragmentSrc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex")
	assert.Contains(t, err.Error(), "syntax error")
	assert.False(t, s.IsValid())
	assert.Zero(t, s.ID())
	assert.Zero(t, g.Live(), "failed compile must not leave objects allocated")
}

func TestCompileFragmentErrorReleasesVertexStage(t *testing.T) {
	g := gltest.New()
	g.FailCompile[graphics.FragmentShader] = "0:4(10): error: `colour' undeclared"
	s := shader.New(g)

	err := s.Compile(vertexSrc, "botched source")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment")
	assert.False(t, s.IsValid())
	assert.Zero(t, g.LiveShaders(), "the compiled vertex stage must not leak")
	assert.Zero(t, g.LivePrograms())
}

func TestCompileLinkError(t *testing.T) {
	g := gltest.New()
	g.FailLink = "error: vertex shader output `vColor' not read by fragment shader"
	s := shader.New(g)

	err := s.Compile(vertexSrc, fragmentSrc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link")
	assert.Contains(t, err.Error(), "vColor")
	assert.False(t, s.IsValid())
	assert.Zero(t, g.Live(), "failed link must release program and both stages")
}

func TestCompileErrorTruncatesDiagnostic(t *testing.T) {
	g := gltest.New()
	g.FailCompile[graphics.VertexShader] = strings.Repeat("x", 4096)
	s := shader.New(g)

	err := s.Compile("botched source", fragmentSrc)
	require.Error(t, err)
	diag := strings.TrimPrefix(err.Error(), "failed to compile vertex shader: ")
	assert.Len(t, diag, 1024)
}

func TestRecompileReleasesPriorProgram(t *testing.T) {
	g := gltest.New()
	s := compileValid(t, g)
	first := s.ID()

	require.NoError(t, s.Compile(vertexSrc, fragmentSrc))
	assert.NotEqual(t, first, s.ID())
	assert.Equal(t, 1, g.LivePrograms())
	assert.Contains(t, g.DeletedPrograms, first)
}

func TestCompileCyclesDoNotLeak(t *testing.T) {
	g := gltest.New()
	s := shader.New(g)
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Compile(vertexSrc, fragmentSrc))
	}
	s.Release()
	assert.Zero(t, g.Live(), "leak counter must return to zero after compile/release cycles")
}

func TestLoadFilesMatchesCompile(t *testing.T) {
	dir := t.TempDir()
	vertexPath := filepath.Join(dir, "basic.vert")
	fragmentPath := filepath.Join(dir, "basic.frag")
	require.NoError(t, os.WriteFile(vertexPath, []byte(vertexSrc), 0o644))
	require.NoError(t, os.WriteFile(fragmentPath, []byte(fragmentSrc), 0o644))

	fromFiles := gltest.New()
	sf := shader.New(fromFiles)
	require.NoError(t, sf.LoadFiles(vertexPath, fragmentPath))
	assert.True(t, sf.IsValid())

	direct := gltest.New()
	sd := shader.New(direct)
	require.NoError(t, sd.Compile(vertexSrc, fragmentSrc))

	assert.Equal(t, direct.CompiledSources, fromFiles.CompiledSources,
		"loading from files must hand the same sources to the compiler")
}

func TestLoadFilesMissingFile(t *testing.T) {
	g := gltest.New()
	s := shader.New(g)

	err := s.LoadFiles(filepath.Join(t.TempDir(), "missing.vert"), filepath.Join(t.TempDir(), "missing.frag"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, g.CreateShaderCalls, "a missing file must fail before any compilation")
}

func TestLoadFilesMissingFragmentFile(t *testing.T) {
	dir := t.TempDir()
	vertexPath := filepath.Join(dir, "basic.vert")
	require.NoError(t, os.WriteFile(vertexPath, []byte(vertexSrc), 0o644))

	g := gltest.New()
	s := shader.New(g)
	err := s.LoadFiles(vertexPath, filepath.Join(dir, "missing.frag"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment shader file")
	assert.Zero(t, g.CreateShaderCalls, "both files are read before compilation starts")
}

func TestUseOnlyWhenValid(t *testing.T) {
	g := gltest.New()
	s := shader.New(g)

	s.Use()
	assert.Empty(t, g.UseCalls)

	require.NoError(t, s.Compile(vertexSrc, fragmentSrc))
	s.Use()
	assert.Equal(t, []uint32{s.ID()}, g.UseCalls)
}

func TestReleaseIsIdempotent(t *testing.T) {
	g := gltest.New()
	s := compileValid(t, g)
	id := s.ID()

	s.Release()
	s.Release()
	assert.False(t, s.IsValid())
	assert.Equal(t, []uint32{id}, g.DeletedPrograms)
}

func TestUnknownUniformNameIsDropped(t *testing.T) {
	g := gltest.New()
	g.Uniforms["uKnown"] = 3
	s := compileValid(t, g)

	s.SetBool("uMissing", true)
	s.SetInt("uMissing", 7)
	s.SetFloat("uMissing", 1.5)
	s.SetVec2("uMissing", 1, 2)
	s.SetVec3("uMissing", 1, 2, 3)
	s.SetVec4("uMissing", 1, 2, 3, 4)
	s.SetMat4("uMissing", mgl32.Ident4())
	assert.Empty(t, g.UniformWrites, "unknown names must not write any GPU state")
}

func TestSettersOnInvalidShaderAreDropped(t *testing.T) {
	g := gltest.New()
	s := shader.New(g)

	s.SetFloat("uTime", 1.0)
	assert.Empty(t, g.UniformWrites)
	assert.Empty(t, g.UniformLookups, "no lookup can happen without a program")
}

func TestUniformSettersWriteValues(t *testing.T) {
	g := gltest.New()
	g.Uniforms = map[string]int32{
		"uFlag": 1, "uCount": 2, "uTime": 3, "uOffset": 4,
		"uColor3": 5, "uColor": 6, "uTransform": 7,
	}
	s := compileValid(t, g)

	s.SetBool("uFlag", true)
	s.SetInt("uCount", 42)
	s.SetFloat("uTime", 1.5)
	s.SetVec2("uOffset", 0.5, 0.25)
	s.SetVec3("uColor3", 1.0, 0.5, 0.2)
	s.SetVec4("uColor", 1.0, 0.5, 0.2, 1.0)
	s.SetMat4("uTransform", mgl32.Ident4())

	identity := mgl32.Ident4()
	assert.Equal(t, []gltest.UniformWrite{
		{Location: 1, Ints: []int32{1}},
		{Location: 2, Ints: []int32{42}},
		{Location: 3, Floats: []float32{1.5}},
		{Location: 4, Floats: []float32{0.5, 0.25}},
		{Location: 5, Floats: []float32{1.0, 0.5, 0.2}},
		{Location: 6, Floats: []float32{1.0, 0.5, 0.2, 1.0}},
		{Location: 7, Floats: identity[:]},
	}, g.UniformWrites)
}

func TestSettersLookUpNameOnEveryCall(t *testing.T) {
	g := gltest.New()
	g.Uniforms["uTime"] = 3
	s := compileValid(t, g)

	s.SetFloat("uTime", 1.0)
	s.SetFloat("uTime", 2.0)
	assert.Equal(t, []string{"uTime", "uTime"}, g.UniformLookups)
}
