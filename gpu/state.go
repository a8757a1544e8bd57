// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"gioui.org/gl2d/drawstate"
	"gioui.org/gl2d/gpu/gl"
)

// blendFunc is the equation and factors of a blend mode, for the color
// and alpha channels.
type blendFunc struct {
	eqRGB, eqAlpha     gl.Enum
	srcRGB, dstRGB     gl.Enum
	srcAlpha, dstAlpha gl.Enum
}

var blendFuncs = [...]blendFunc{
	drawstate.BlendAlpha: {
		eqRGB: gl.FUNC_ADD, eqAlpha: gl.FUNC_ADD,
		srcRGB: gl.SRC_ALPHA, dstRGB: gl.ONE_MINUS_SRC_ALPHA,
		srcAlpha: gl.SRC_ALPHA, dstAlpha: gl.ONE_MINUS_SRC_ALPHA,
	},
	drawstate.BlendAdd: {
		eqRGB: gl.FUNC_ADD, eqAlpha: gl.FUNC_ADD,
		srcRGB: gl.ONE, dstRGB: gl.ONE,
		srcAlpha: gl.ONE, dstAlpha: gl.ONE,
	},
	drawstate.BlendMultiply: {
		eqRGB: gl.FUNC_ADD, eqAlpha: gl.FUNC_ADD,
		srcRGB: gl.DST_COLOR, dstRGB: gl.ZERO,
		srcAlpha: gl.DST_ALPHA, dstAlpha: gl.ZERO,
	},
	drawstate.BlendInvert: {
		eqRGB: gl.FUNC_SUBTRACT, eqAlpha: gl.FUNC_ADD,
		srcRGB: gl.CONSTANT_COLOR, dstRGB: gl.SRC_COLOR,
		srcAlpha: gl.ZERO, dstAlpha: gl.ONE,
	},
	drawstate.BlendLighter: {
		eqRGB: gl.FUNC_ADD, eqAlpha: gl.FUNC_ADD,
		srcRGB: gl.SRC_ALPHA, dstRGB: gl.ONE,
		srcAlpha: gl.ZERO, dstAlpha: gl.ONE,
	},
}

// bindState issues the calls that move the device from old to ds. A
// nil old means the device state is unknown and every aspect is set.
func bindState(f gl.Functions, old *drawstate.DrawState, ds drawstate.DrawState, vp Viewport) {
	if old == nil || old.Scissor != ds.Scissor {
		applyScissor(f, ds.Scissor, vp)
	}
	if old == nil || old.Stencil != ds.Stencil {
		applyStencil(f, ds.Stencil)
	}
	if old == nil || old.Blend != ds.Blend {
		applyBlend(f, ds.Blend)
	}
}

// applyScissor converts the upper left origin rectangle of s to the
// lower left origin of the device.
func applyScissor(f gl.Functions, s drawstate.Scissor, vp Viewport) {
	if !s.Enabled {
		f.Disable(gl.SCISSOR_TEST)
		return
	}
	r := s.Rect
	y := int32(vp.Height) - int32(r[1]+r[3])
	f.Enable(gl.SCISSOR_TEST)
	f.Scissor(int32(r[0]), y, int32(r[2]), int32(r[3]))
}

func applyStencil(f gl.Functions, s drawstate.Stencil) {
	ref := int(s.Level)
	switch s.Op {
	case drawstate.StencilNone:
		f.Disable(gl.STENCIL_TEST)
		return
	case drawstate.StencilClip:
		f.Enable(gl.STENCIL_TEST)
		f.StencilFunc(gl.NEVER, ref, 0xff)
		f.StencilMask(0xff)
		f.StencilOp(gl.REPLACE, gl.KEEP, gl.KEEP)
	case drawstate.StencilInside:
		f.Enable(gl.STENCIL_TEST)
		f.StencilFunc(gl.EQUAL, ref, 0xff)
		f.StencilMask(0xff)
		f.StencilOp(gl.KEEP, gl.KEEP, gl.KEEP)
	case drawstate.StencilOutside:
		f.Enable(gl.STENCIL_TEST)
		f.StencilFunc(gl.NOTEQUAL, ref, 0xff)
		f.StencilMask(0xff)
		f.StencilOp(gl.KEEP, gl.KEEP, gl.KEEP)
	case drawstate.StencilIncrement:
		// INCR saturates at 255.
		f.Enable(gl.STENCIL_TEST)
		f.StencilFunc(gl.NEVER, 0, 0xff)
		f.StencilMask(0xff)
		f.StencilOp(gl.INCR, gl.KEEP, gl.KEEP)
	default:
		panic(fmt.Errorf("gl2d: unknown stencil operation %v", s.Op))
	}
}

func applyBlend(f gl.Functions, b drawstate.Blend) {
	if b == drawstate.BlendNone {
		f.Disable(gl.BLEND)
		return
	}
	if int(b) >= len(blendFuncs) {
		panic(fmt.Errorf("gl2d: unknown blend mode %v", b))
	}
	bf := blendFuncs[b]
	f.Enable(gl.BLEND)
	if b == drawstate.BlendInvert {
		f.BlendColor(1, 1, 1, 1)
	}
	f.BlendEquationSeparate(bf.eqRGB, bf.eqAlpha)
	f.BlendFuncSeparate(bf.srcRGB, bf.dstRGB, bf.srcAlpha, bf.dstAlpha)
}
