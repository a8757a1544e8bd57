// SPDX-License-Identifier: Unlicense OR MIT

// Package text renders strings with textured glyph quads. Glyphs are
// rasterized from an OpenType font into alpha textures on first use
// and kept in a least recently used cache.
package text

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"gioui.org/gl2d/gpu"
	"gioui.org/gl2d/gpu/gl"
)

// TextureFactory uploads a coverage mask of width*height bytes.
type TextureFactory func(alpha []byte, width, height int) (*gpu.Texture, error)

// GLTextures returns a TextureFactory creating linearly filtered
// textures with f.
func GLTextures(f gl.Functions) TextureFactory {
	return func(alpha []byte, width, height int) (*gpu.Texture, error) {
		return gpu.NewTextureFromAlpha(f, alpha, width, height, gpu.DefaultTextureSettings())
	}
}

// Character is a rendered glyph.
type Character struct {
	// Offset is the left and top bearing of the glyph bitmap relative
	// to the pen position on the baseline. Top is positive above the
	// baseline.
	Offset [2]float32
	// Size is the pen advance to the next character.
	Size [2]float32
	// Texture holds the glyph coverage. It is nil for glyphs without
	// pixels, such as spaces.
	Texture *gpu.Texture
}

// Left is the horizontal distance from the pen position to the left
// edge of the glyph bitmap.
func (c *Character) Left() float32 { return c.Offset[0] }

// Top is the distance from the baseline up to the top edge of the
// glyph bitmap.
func (c *Character) Top() float32 { return c.Offset[1] }

// Width returns the horizontal advance.
func (c *Character) Width() float32 { return c.Size[0] }

// Height returns the vertical advance.
func (c *Character) Height() float32 { return c.Size[1] }

// Option configures a Cache.
type Option func(c *Cache)

// WithMaxGlyphs limits the number of cached characters.
func WithMaxGlyphs(n int) Option {
	return func(c *Cache) {
		c.glyphs.max = n
	}
}

// Cache rasterizes and memoizes the characters of a font per pixel
// size. It must be used from the goroutine owning the GL context.
type Cache struct {
	font     *opentype.Font
	textures TextureFactory
	faces    map[uint32]font.Face
	glyphs   glyphLRU
	// evicted textures are released by Maintain.
	evicted []*gpu.Texture
}

// NewCache parses an OpenType or TrueType font.
func NewCache(ttf []byte, textures TextureFactory, opts ...Option) (*Cache, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	c := &Cache{
		font:     f,
		textures: textures,
		faces:    make(map[uint32]font.Face),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Cache) face(size uint32) (font.Face, error) {
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: %dpx face: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}

// Character returns the character for r at size pixels, rendering it
// on first use.
func (c *Cache) Character(size uint32, r rune) (*Character, error) {
	k := glyphKey{size: size, r: r}
	if ch, ok := c.glyphs.Get(k); ok {
		return ch, nil
	}
	ch, err := c.render(size, r)
	if err != nil {
		return nil, err
	}
	if ev := c.glyphs.Put(k, ch); ev != nil && ev.Texture != nil {
		c.evicted = append(c.evicted, ev.Texture)
	}
	return ch, nil
}

func (c *Cache) render(size uint32, r rune) (*Character, error) {
	face, err := c.face(size)
	if err != nil {
		return nil, err
	}
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, fmt.Errorf("text: no glyph for %q", r)
	}
	ch := &Character{
		Offset: [2]float32{float32(dr.Min.X), float32(-dr.Min.Y)},
		Size:   [2]float32{fixedToFloat(advance), 0},
	}
	if dr.Empty() {
		return ch, nil
	}
	// The face reuses its mask; copy the coverage out.
	alpha := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(alpha, alpha.Bounds(), mask, maskp, draw.Src)
	tex, err := c.textures(alpha.Pix, dr.Dx(), dr.Dy())
	if err != nil {
		return nil, fmt.Errorf("text: glyph %q: %w", r, err)
	}
	ch.Texture = tex
	return ch, nil
}

// Kern returns the kerning adjustment between r0 and r1.
func (c *Cache) Kern(size uint32, r0, r1 rune) (float32, error) {
	face, err := c.face(size)
	if err != nil {
		return 0, err
	}
	return fixedToFloat(face.Kern(r0, r1)), nil
}

// Width returns the advance of s at size pixels, kerning included.
func (c *Cache) Width(size uint32, s string) (float32, error) {
	var w float32
	prev := rune(-1)
	for _, r := range s {
		ch, err := c.Character(size, r)
		if err != nil {
			return 0, err
		}
		if prev >= 0 {
			k, err := c.Kern(size, prev, r)
			if err != nil {
				return 0, err
			}
			w += k
		}
		w += ch.Width()
		prev = r
	}
	return w, nil
}

// Maintain releases the textures of characters evicted since the last
// call. Evicted textures stay valid until then, so call it between
// frames.
func (c *Cache) Maintain() {
	for _, t := range c.evicted {
		t.Release()
	}
	c.evicted = c.evicted[:0]
}

// Len returns the number of cached characters.
func (c *Cache) Len() int {
	return c.glyphs.Len()
}

// Release frees every texture and face of the cache.
func (c *Cache) Release() {
	c.Maintain()
	c.glyphs.Clear(func(ch *Character) {
		if ch.Texture != nil {
			ch.Texture.Release()
		}
	})
	var errs []error
	for size, face := range c.faces {
		errs = append(errs, face.Close())
		delete(c.faces, size)
	}
	if err := errors.Join(errs...); err != nil {
		gpu.Logger().Warn("text: closing faces", "error", err)
	}
}

// DrawText draws s with its baseline starting at x, y in the
// coordinates of ctx. Blending is taken from the draw state of ctx;
// text usually wants drawstate.Alpha.
func DrawText(g gpu.Graphics, ctx gpu.Context, c *Cache, size uint32, color [4]float32, s string, x, y float32) error {
	prev := rune(-1)
	for _, r := range s {
		ch, err := c.Character(size, r)
		if err != nil {
			return err
		}
		if prev >= 0 {
			k, err := c.Kern(size, prev, r)
			if err != nil {
				return err
			}
			x += k
		}
		if ch.Texture != nil {
			w, h := ch.Texture.Size()
			gpu.Image(g, ctx, ch.Texture, color, [4]float32{x + ch.Left(), y - ch.Top(), float32(w), float32(h)})
		}
		x += ch.Width()
		prev = r
	}
	return nil
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
