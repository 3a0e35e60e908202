package texture_test

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neapu/LearnOpenGL/graphics"
	"github.com/neapu/LearnOpenGL/graphics/gltest"
	"github.com/neapu/LearnOpenGL/texture"
)

// twoRowImage returns a 1x2 image with a red top row and a blue bottom row.
func twoRowImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadPNG(t *testing.T) {
	g := gltest.New()
	path := writePNG(t, image.NewRGBA(image.Rect(0, 0, 4, 2)))

	tex, err := texture.Load(g, path)
	require.NoError(t, err)

	assert.NotZero(t, tex.ID())
	assert.Equal(t, 4, tex.Width())
	assert.Equal(t, 2, tex.Height())
	assert.Equal(t, 1, g.LiveTextures())

	state, ok := g.Texture(tex.ID())
	require.True(t, ok)
	assert.Equal(t, int32(4), state.Width)
	assert.Equal(t, int32(2), state.Height)
	assert.Equal(t, uint32(graphics.RGBA), state.Format)
	assert.Equal(t, int32(graphics.RGBA8), state.Internal)
	assert.True(t, state.Mipmapped)
	assert.Equal(t, map[uint32]int32{
		graphics.TextureWrapS:     graphics.Repeat,
		graphics.TextureWrapT:     graphics.Repeat,
		graphics.TextureMinFilter: graphics.LinearMipmapLinear,
		graphics.TextureMagFilter: graphics.Linear,
	}, state.Params)
	assert.Zero(t, g.Bound(graphics.Texture2D), "texture must be unbound after upload")
}

func TestLoadJPEG(t *testing.T) {
	g := gltest.New()
	path := filepath.Join(t.TempDir(), "test.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil))
	require.NoError(t, f.Close())

	tex, err := texture.Load(g, path)
	require.NoError(t, err)
	assert.Equal(t, 8, tex.Width())
	assert.Equal(t, 8, tex.Height())
	assert.Equal(t, 1, g.LiveTextures())
}

func TestUploadFlipsRows(t *testing.T) {
	g := gltest.New()
	tex, err := texture.New(g, twoRowImage())
	require.NoError(t, err)

	state, ok := g.Texture(tex.ID())
	require.True(t, ok)
	require.Len(t, state.Pixels, 8)
	assert.Equal(t, []byte{0, 0, 255, 255}, state.Pixels[:4], "bottom image row uploads first")
	assert.Equal(t, []byte{255, 0, 0, 255}, state.Pixels[4:], "top image row uploads last")
}

func TestLoadMissingFile(t *testing.T) {
	g := gltest.New()

	_, err := texture.Load(g, filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, g.GenTextureCalls, "a missing file must fail before any GL call")
}

func TestLoadCorruptFile(t *testing.T) {
	g := gltest.New()
	path := filepath.Join(t.TempDir(), "corrupt.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := texture.Load(g, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
	assert.Zero(t, g.GenTextureCalls)
}

func TestBindSelectsUnit(t *testing.T) {
	g := gltest.New()
	tex, err := texture.New(g, twoRowImage())
	require.NoError(t, err)

	tex.Bind(0)
	assert.Equal(t, uint32(graphics.Texture0), g.ActiveUnit())
	assert.Equal(t, tex.ID(), g.Bound(graphics.Texture2D))

	tex.Bind(3)
	assert.Equal(t, uint32(graphics.Texture0+3), g.ActiveUnit())
}

func TestReleaseIsIdempotent(t *testing.T) {
	g := gltest.New()
	tex, err := texture.New(g, twoRowImage())
	require.NoError(t, err)
	id := tex.ID()

	tex.Release()
	tex.Release()
	assert.Zero(t, tex.ID())
	assert.Zero(t, g.LiveTextures())
	assert.Equal(t, []uint32{id}, g.DeletedTextures)
}
