// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gpu implements a batching 2D renderer on top of OpenGL.

Triangles are accumulated in CPU side batches, one for solid colored
and one for textured geometry, and drawn with a single glDrawArrays
call when the draw state, the texture or the shader kind changes, when
a batch is full or when the frame ends. Device state is tracked so
that only changed aspects of a draw state are re-applied.

A Renderer and every Texture created for it must be used from the
goroutine that owns the GL context.
*/
package gpu

import (
	"fmt"
	"log/slog"

	"gioui.org/gl2d/drawstate"
	"gioui.org/gl2d/gpu/gl"
	"gioui.org/gl2d/internal/f32color"
)

// DrawState is the render state of a draw call.
type DrawState = drawstate.DrawState

// Viewport is the framebuffer rectangle drawn to, in pixels.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Renderer draws batched triangle lists.
type Renderer struct {
	funcs gl.Functions
	cnf   Config
	log   *slog.Logger
	glsl  GLSL
	// srgb reports whether frames render to an sRGB framebuffer.
	srgb bool

	colored  *coloredProgram
	textured *texturedProgram

	colorBatch colorBatch
	texBatch   textureBatch

	// Zero when the bound program is unknown.
	currentProgram gl.Program
	// state is the bound draw state, if stateValid.
	state      DrawState
	stateValid bool
	viewport   Viewport
	inFrame    bool
	stats      Stats
}

type coloredProgram struct {
	*program
	pos, color *attribute
}

type texturedProgram struct {
	*program
	pos, uv *attribute
	color   gl.Uniform
}

// New creates a renderer for the GL context current on the calling
// goroutine. It compiles and links both built-in programs; any
// failure is reported as a *ConstructionError.
func New(f gl.Functions, opts ...Option) (*Renderer, error) {
	cnf := newConfig(opts)
	glVer := f.GetString(gl.VERSION)
	ver, es, err := gl.ParseGLVersion(glVer)
	if err != nil {
		return nil, &ConstructionError{Op: "version", Err: err}
	}
	glsl := cnf.GLSL
	if glsl == GLSLAuto {
		glsl, err = GLSLFor(ver, es)
		if err != nil {
			return nil, &ConstructionError{Op: "version", Err: err}
		}
	}
	r := &Renderer{
		funcs:      f,
		cnf:        cnf,
		log:        cnf.Logger,
		glsl:       glsl,
		colorBatch: newColorBatch(cnf.Capacity),
		texBatch:   newTextureBatch(cnf.Capacity),
	}
	if cnf.SRGB {
		r.srgb = ver[0] >= 3 ||
			gl.HasExtension(f.GetString(gl.EXTENSIONS), "GL_ARB_framebuffer_sRGB") ||
			gl.HasExtension(f.GetString(gl.EXTENSIONS), "GL_EXT_framebuffer_sRGB")
	}
	colored, err := newProgram(f, shader_colored, glsl)
	if err != nil {
		return nil, &ConstructionError{Op: "colored program", Err: err}
	}
	r.colored = &coloredProgram{
		program: colored,
		pos:     colored.attr("pos"),
		color:   colored.attr("color"),
	}
	textured, err := newProgram(f, shader_textured, glsl)
	if err != nil {
		colored.release(f)
		return nil, &ConstructionError{Op: "textured program", Err: err}
	}
	r.textured = &texturedProgram{
		program: textured,
		pos:     textured.attr("pos"),
		uv:      textured.attr("uv"),
		color:   textured.uniforms["color"],
	}
	r.log.Info("gl2d: renderer created",
		"gl_version", glVer,
		"glsl", glsl.String(),
		"srgb", r.srgb,
		"capacity", cnf.Capacity,
	)
	return r, nil
}

// GLSL returns the shading language tier the programs were built for.
func (r *Renderer) GLSL() GLSL {
	return r.glsl
}

// Release deletes the programs, vertex arrays and buffers of the
// renderer. Pending geometry is discarded.
func (r *Renderer) Release() {
	if r.colored != nil {
		r.colored.release(r.funcs)
		r.colored = nil
	}
	if r.textured != nil {
		r.textured.release(r.funcs)
		r.textured = nil
	}
	r.colorBatch.offset = 0
	r.texBatch.offset = 0
}

// BeginFrame starts drawing to the viewport. The bound program and
// draw state are forgotten, so the first draw of every frame applies
// its state in full.
func (r *Renderer) BeginFrame(vp Viewport) Context {
	if r.inFrame {
		panic("gl2d: BeginFrame called before EndFrame")
	}
	if r.colored == nil {
		panic("gl2d: BeginFrame on a released renderer")
	}
	r.inFrame = true
	r.currentProgram = gl.Program{}
	r.stateValid = false
	r.texBatch.texture = gl.Texture{}
	r.viewport = vp
	r.stats = Stats{}
	f := r.funcs
	f.Viewport(vp.X, vp.Y, vp.Width, vp.Height)
	if r.srgb {
		f.Enable(gl.FRAMEBUFFER_SRGB)
	}
	f.ActiveTexture(gl.TEXTURE0)
	return newContext(vp)
}

// EndFrame draws the pending batch and ends the frame.
func (r *Renderer) EndFrame() {
	r.mustBeInFrame("EndFrame")
	r.flush(FlushEndFrame)
	r.inFrame = false
	r.log.Debug("gl2d: frame",
		"draw_calls", r.stats.DrawCalls,
		"vertices", r.stats.Vertices,
		"state_changes", r.stats.StateChanges,
	)
}

// Draw calls f between BeginFrame and EndFrame.
func (r *Renderer) Draw(vp Viewport, f func(c Context, r *Renderer)) {
	c := r.BeginFrame(vp)
	f(c, r)
	r.EndFrame()
}

// Stats returns the statistics of the current frame, or of the last
// one between frames.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// ClearColor clears the color buffer to the sRGB color, and the depth
// buffer if the framebuffer has one. Pending geometry is drawn first.
// Like glClear, the clear is limited by the scissor rectangle of the
// bound draw state. Before the first draw of a frame the default state
// is bound, so the whole viewport is cleared.
func (r *Renderer) ClearColor(color [4]float32) {
	r.flush(FlushClear)
	r.knownState()
	c := r.linearColor(color)
	r.funcs.ClearColor(c[0], c[1], c[2], c[3])
	r.funcs.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ClearStencil clears the stencil buffer to value. Pending geometry is
// drawn first.
func (r *Renderer) ClearStencil(value uint8) {
	r.flush(FlushClear)
	r.knownState()
	r.funcs.ClearStencil(int(value))
	r.funcs.Clear(gl.STENCIL_BUFFER_BIT)
}

// knownState binds the default draw state if the device state is left
// over from an earlier frame.
func (r *Renderer) knownState() {
	if !r.stateValid {
		r.bindState(drawstate.Default())
	}
}

func (r *Renderer) useProgram(p gl.Program) {
	if !p.Equal(r.currentProgram) {
		r.funcs.UseProgram(p)
		r.currentProgram = p
	}
}

func (r *Renderer) bindState(ds DrawState) {
	var old *DrawState
	if r.stateValid {
		old = &r.state
	}
	bindState(r.funcs, old, ds, r.viewport)
	r.state = ds
	r.stateValid = true
	r.stats.StateChanges++
}

// linearColor converts an sRGB color to the color space of the
// framebuffer.
func (r *Renderer) linearColor(c [4]float32) [4]float32 {
	if !r.srgb {
		return c
	}
	return f32color.LinearFromSRGBArray(c)
}

func (r *Renderer) mustBeInFrame(op string) {
	if !r.inFrame {
		panic(fmt.Sprintf("gl2d: %s called outside BeginFrame/EndFrame", op))
	}
}
