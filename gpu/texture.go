// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"gioui.org/gl2d/gpu/gl"
)

// Filter is a texture sampling filter.
type Filter uint8

// Wrap is a texture coordinate wrap mode.
type Wrap uint8

const (
	FilterLinear Filter = iota
	FilterNearest
)

const (
	WrapClampToEdge Wrap = iota
	WrapClampToBorder
	WrapRepeat
	WrapMirroredRepeat
)

// TextureSettings control how a texture is sampled and stored.
type TextureSettings struct {
	Min, Mag Filter
	// Mipmap filters between mipmap levels when GenerateMipmap is set.
	Mipmap         Filter
	GenerateMipmap bool
	WrapU, WrapV   Wrap
	// Border is the RGBA color sampled outside a WrapClampToBorder
	// texture.
	Border [4]float32
	// ConvertGamma stores the pixels as sRGB so that sampling returns
	// linear values.
	ConvertGamma bool
}

// Texture is an RGBA8 texture on the device. It is released exactly
// once by Release.
type Texture struct {
	funcs         gl.Functions
	obj           gl.Texture
	width, height int
	// maxSize is GL_MAX_TEXTURE_SIZE, queried at creation.
	maxSize  int
	settings TextureSettings
	// drawer is the renderer that last batched the texture.
	drawer *Renderer
}

// DefaultTextureSettings returns linear filtering, no mipmaps and edge
// clamping.
func DefaultTextureSettings() TextureSettings {
	return TextureSettings{}
}

// WithFilter returns s with both the minification and magnification
// filter set to filter.
func (s TextureSettings) WithFilter(filter Filter) TextureSettings {
	s.Min, s.Mag = filter, filter
	return s
}

// WithWrap returns s with both wrap modes set to w.
func (s TextureSettings) WithWrap(w Wrap) TextureSettings {
	s.WrapU, s.WrapV = w, w
	return s
}

// NewTexture uploads width*height RGBA8 pixels to a new texture.
func NewTexture(f gl.Functions, pixels []byte, width, height int, settings TextureSettings) (*Texture, error) {
	maxSize := f.GetInteger(gl.MAX_TEXTURE_SIZE)
	if err := checkPixels(maxSize, pixels, width, height); err != nil {
		return nil, err
	}
	obj := f.CreateTexture()
	if !obj.Valid() {
		return nil, &TextureError{Op: "create texture", Code: f.GetError()}
	}
	t := &Texture{
		funcs:    f,
		obj:      obj,
		width:    width,
		height:   height,
		maxSize:  maxSize,
		settings: settings,
	}
	f.BindTexture(gl.TEXTURE_2D, obj)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter(settings))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, toTexFilter(settings.Mag))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, toTexWrap(settings.WrapU))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, toTexWrap(settings.WrapV))
	if settings.WrapU == WrapClampToBorder || settings.WrapV == WrapClampToBorder {
		f.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, settings.Border[:])
	}
	if err := t.upload(pixels, width, height); err != nil {
		t.Release()
		return nil, err
	}
	Logger().Debug("gl2d: texture created", "width", width, "height", height, "srgb", settings.ConvertGamma)
	return t, nil
}

// Update replaces the texture contents. The handle is kept; the
// dimensions may change. Geometry batched with the old contents is
// drawn first.
func (t *Texture) Update(pixels []byte, width, height int) error {
	if !t.obj.Valid() {
		return fmt.Errorf("gl2d: update of released texture")
	}
	if err := checkPixels(t.maxSize, pixels, width, height); err != nil {
		return err
	}
	t.flushPending()
	t.funcs.BindTexture(gl.TEXTURE_2D, t.obj)
	if err := t.upload(pixels, width, height); err != nil {
		return err
	}
	t.width, t.height = width, height
	return nil
}

func (t *Texture) upload(pixels []byte, width, height int) error {
	f := t.funcs
	internal := gl.RGBA8
	if t.settings.ConvertGamma {
		internal = gl.SRGB8_ALPHA8
	}
	f.TexImage2D(gl.TEXTURE_2D, 0, internal, width, height, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	if t.settings.GenerateMipmap {
		f.GenerateMipmap(gl.TEXTURE_2D)
	}
	return glErr(f, "upload texture")
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Settings returns the settings the texture was created with.
func (t *Texture) Settings() TextureSettings {
	return t.settings
}

// Release deletes the device texture. Pending geometry sampling it is
// drawn first. Subsequent calls do nothing.
func (t *Texture) Release() {
	if !t.obj.Valid() {
		return
	}
	t.flushPending()
	if r := t.drawer; r != nil && r.texBatch.texture.Equal(t.obj) {
		r.texBatch.texture = gl.Texture{}
	}
	t.drawer = nil
	t.funcs.DeleteTexture(t.obj)
	t.obj = gl.Texture{}
}

// flushPending draws the textured batch of the last renderer using t,
// if the batch samples t.
func (t *Texture) flushPending() {
	r := t.drawer
	if r == nil || r.texBatch.offset == 0 || !r.texBatch.texture.Equal(t.obj) {
		return
	}
	r.flushTextured(FlushTexture)
}

func checkPixels(maxSize int, pixels []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gl2d: %dx%d texture: %w", width, height, ErrTextureSize)
	}
	if maxSize > 0 && (width > maxSize || height > maxSize) {
		return fmt.Errorf("gl2d: %dx%d texture exceeds %d: %w", width, height, maxSize, ErrTextureSize)
	}
	if len(pixels) != width*height*4 {
		return fmt.Errorf("gl2d: %d bytes for a %dx%d texture: %w", len(pixels), width, height, ErrPixelSize)
	}
	return nil
}

func minFilter(s TextureSettings) int {
	if !s.GenerateMipmap {
		return toTexFilter(s.Min)
	}
	switch {
	case s.Min == FilterLinear && s.Mipmap == FilterLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	case s.Min == FilterLinear:
		return gl.LINEAR_MIPMAP_NEAREST
	case s.Mipmap == FilterLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	default:
		return gl.NEAREST_MIPMAP_NEAREST
	}
}

func toTexFilter(f Filter) int {
	switch f {
	case FilterNearest:
		return gl.NEAREST
	case FilterLinear:
		return gl.LINEAR
	default:
		panic("unsupported texture filter")
	}
}

func toTexWrap(w Wrap) int {
	switch w {
	case WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	case WrapRepeat:
		return gl.REPEAT
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		panic("unsupported wrap mode")
	}
}
