// SPDX-License-Identifier: Unlicense OR MIT

/*
Package drawstate describes the fixed-function state a 2D draw call is
rendered with: blending, stencil clipping and the scissor rectangle.

A DrawState is a small comparable value. The zero value disables
blending, the stencil test and the scissor test.

Nested clipping is expressed with stencil levels. A clip shape is
first painted into the stencil buffer, for example with

	ds := drawstate.Default().WithStencil(drawstate.Clip(1))

and subsequent draws are restricted to it with

	ds := drawstate.Alpha().WithStencil(drawstate.Inside(1))
*/
package drawstate

import (
	"errors"
	"fmt"
)

// Blend selects one of the predefined blend equations.
type Blend uint8

// StencilOp selects how a draw call tests and updates the stencil
// buffer.
type StencilOp uint8

// Stencil is a stencil operation together with its 8-bit reference
// level.
type Stencil struct {
	Op    StencilOp
	Level uint8
}

// Scissor restricts drawing to a rectangle in pixels, with the origin
// in the upper left corner of the viewport.
type Scissor struct {
	Enabled bool
	// Rect is x, y, width, height.
	Rect [4]uint32
}

// DrawState is the complete render state of a draw call.
type DrawState struct {
	Blend   Blend
	Stencil Stencil
	Scissor Scissor
}

const (
	BlendNone Blend = iota
	// BlendAlpha composites the source over the destination using the
	// source alpha.
	BlendAlpha
	// BlendAdd adds source and destination.
	BlendAdd
	// BlendMultiply multiplies source and destination.
	BlendMultiply
	// BlendInvert inverts the destination where the source is white.
	BlendInvert
	// BlendLighter adds the source weighted by its alpha.
	BlendLighter
)

const (
	StencilNone StencilOp = iota
	// StencilClip writes the level to every covered pixel without
	// touching the color buffer.
	StencilClip
	// StencilInside draws where the stencil buffer equals the level.
	StencilInside
	// StencilOutside draws where the stencil buffer differs from the
	// level.
	StencilOutside
	// StencilIncrement increments the stencil value of every covered
	// pixel, saturating at 255, without touching the color buffer.
	StencilIncrement
)

// MaxLevel is the deepest clip nesting level the 8-bit stencil buffer
// can represent.
const MaxLevel = 255

// ErrClipOverflow is returned for clip levels outside [0, MaxLevel].
var ErrClipOverflow = errors.New("drawstate: clip nesting exceeds the stencil range")

// Default returns the state with blending, stencil and scissor tests
// disabled.
func Default() DrawState {
	return DrawState{}
}

// Alpha returns the default state with alpha blending enabled.
func Alpha() DrawState {
	return DrawState{Blend: BlendAlpha}
}

// Increment returns a state that increments the stencil buffer under
// every drawn pixel. Drawing a shape n times with it prepares clip
// level n for Inside.
func Increment() DrawState {
	return DrawState{Stencil: Stencil{Op: StencilIncrement}}
}

// Level validates a clip nesting depth. Depths beyond MaxLevel cannot
// be represented in the stencil buffer and fail with ErrClipOverflow.
func Level(n int) (uint8, error) {
	if n < 0 || n > MaxLevel {
		return 0, fmt.Errorf("level %d: %w", n, ErrClipOverflow)
	}
	return uint8(n), nil
}

// Clip returns the stencil operation that paints level into the stencil
// buffer.
func Clip(level uint8) Stencil {
	return Stencil{Op: StencilClip, Level: level}
}

// Inside returns the stencil operation that restricts drawing to pixels
// whose stencil value equals level.
func Inside(level uint8) Stencil {
	return Stencil{Op: StencilInside, Level: level}
}

// Outside returns the stencil operation that restricts drawing to pixels
// whose stencil value differs from level.
func Outside(level uint8) Stencil {
	return Stencil{Op: StencilOutside, Level: level}
}

// ScissorRect returns an enabled scissor for the rectangle x, y, w, h.
func ScissorRect(x, y, w, h uint32) Scissor {
	return Scissor{Enabled: true, Rect: [4]uint32{x, y, w, h}}
}

// WithBlend returns d with its blend mode replaced by b.
func (d DrawState) WithBlend(b Blend) DrawState {
	d.Blend = b
	return d
}

// WithStencil returns d with its stencil mode replaced by s.
func (d DrawState) WithStencil(s Stencil) DrawState {
	d.Stencil = s
	return d
}

// WithScissor restricts d to the rectangle x, y, w, h.
func (d DrawState) WithScissor(x, y, w, h uint32) DrawState {
	d.Scissor = ScissorRect(x, y, w, h)
	return d
}

// WithoutScissor returns d with the scissor test disabled.
func (d DrawState) WithoutScissor() DrawState {
	d.Scissor = Scissor{}
	return d
}

// Intersect returns the scissor covering the overlap of s and the
// rectangle x, y, w, h. A disabled s is treated as unbounded.
func (s Scissor) Intersect(x, y, w, h uint32) Scissor {
	if !s.Enabled {
		return ScissorRect(x, y, w, h)
	}
	r := s.Rect
	x0, y0 := max(r[0], x), max(r[1], y)
	x1, y1 := min(r[0]+r[2], x+w), min(r[1]+r[3], y+h)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return ScissorRect(x0, y0, x1-x0, y1-y0)
}

func (b Blend) String() string {
	switch b {
	case BlendNone:
		return "None"
	case BlendAlpha:
		return "Alpha"
	case BlendAdd:
		return "Add"
	case BlendMultiply:
		return "Multiply"
	case BlendInvert:
		return "Invert"
	case BlendLighter:
		return "Lighter"
	default:
		return fmt.Sprintf("Blend(%d)", uint8(b))
	}
}

func (o StencilOp) String() string {
	switch o {
	case StencilNone:
		return "None"
	case StencilClip:
		return "Clip"
	case StencilInside:
		return "Inside"
	case StencilOutside:
		return "Outside"
	case StencilIncrement:
		return "Increment"
	default:
		return fmt.Sprintf("StencilOp(%d)", uint8(o))
	}
}

func (s Stencil) String() string {
	if s.Op == StencilNone || s.Op == StencilIncrement {
		return s.Op.String()
	}
	return fmt.Sprintf("%v(%d)", s.Op, s.Level)
}

func (d DrawState) String() string {
	sc := "off"
	if d.Scissor.Enabled {
		sc = fmt.Sprint(d.Scissor.Rect)
	}
	return fmt.Sprintf("{blend: %v, stencil: %v, scissor: %s}", d.Blend, d.Stencil, sc)
}
