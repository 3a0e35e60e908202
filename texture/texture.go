// Package texture loads 2D textures from image files for the example scenes.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Register the decoders for the image formats the example scenes load.
	_ "image/jpeg"
	_ "image/png"

	"github.com/neapu/LearnOpenGL/graphics"
)

// Texture is a GPU-side 2D image, uploaded once at creation and never
// updated afterwards.
type Texture struct {
	gl     graphics.GL
	id     uint32
	width  int
	height int
}

// Load decodes a PNG or JPEG file and uploads it as a texture.
func Load(g graphics.GL, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return New(g, img)
}

// New uploads img as an RGBA8 texture with repeat wrapping, linear filtering
// and mipmaps. Rows are flipped during upload so the image's top row ends up
// at texture coordinate t=1, matching OpenGL's bottom-left origin.
func New(g graphics.GL, img image.Image) (*Texture, error) {
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)
	if rgba.Stride != rgba.Rect.Size().X*4 {
		return nil, fmt.Errorf("unsupported image stride %d", rgba.Stride)
	}

	width := rgba.Rect.Size().X
	height := rgba.Rect.Size().Y
	pixels := flipRows(rgba.Pix, rgba.Stride, height)

	t := &Texture{gl: g, width: width, height: height}
	g.GenTextures(1, &t.id)
	g.BindTexture(graphics.Texture2D, t.id)
	g.TexParameteri(graphics.Texture2D, graphics.TextureWrapS, graphics.Repeat)
	g.TexParameteri(graphics.Texture2D, graphics.TextureWrapT, graphics.Repeat)
	g.TexParameteri(graphics.Texture2D, graphics.TextureMinFilter, graphics.LinearMipmapLinear)
	g.TexParameteri(graphics.Texture2D, graphics.TextureMagFilter, graphics.Linear)
	g.TexImage2D(graphics.Texture2D, 0, graphics.RGBA8, int32(width), int32(height), 0,
		graphics.RGBA, graphics.UnsignedByte, pixels)
	g.GenerateMipmap(graphics.Texture2D)
	g.BindTexture(graphics.Texture2D, 0)
	return t, nil
}

// flipRows returns pix with its rows in bottom-to-top order. Copying whole
// rows through Pix is faster than per-pixel At/Set.
func flipRows(pix []byte, stride, rows int) []byte {
	flipped := make([]byte, len(pix))
	for y := 0; y < rows; y++ {
		srcRow := pix[((rows-1)-y)*stride:]
		copy(flipped[y*stride:(y+1)*stride], srcRow[:stride])
	}
	return flipped
}

// ID returns the texture object name, zero after Release.
func (t *Texture) ID() uint32 { return t.id }

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Bind makes the texture current on the given texture unit.
func (t *Texture) Bind(unit uint32) {
	t.gl.ActiveTexture(graphics.Texture0 + unit)
	t.gl.BindTexture(graphics.Texture2D, t.id)
}

// Release deletes the GPU texture. Safe to call repeatedly.
func (t *Texture) Release() {
	if t.id != 0 {
		t.gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
