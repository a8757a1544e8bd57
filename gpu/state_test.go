// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"reflect"
	"testing"

	"gioui.org/gl2d/drawstate"
	"gioui.org/gl2d/internal/gltest"
)

var testViewport = Viewport{Width: 640, Height: 480}

func bindCalls(old *DrawState, ds DrawState) []string {
	rec := new(gltest.Recorder)
	bindState(rec, old, ds, testViewport)
	return rec.Strings()
}

func TestScissorFlip(t *testing.T) {
	ds := drawstate.Default().WithScissor(100, 100, 100, 100)
	got := bindCalls(&DrawState{}, ds)
	exp := []string{"Enable(SCISSOR_TEST)", "Scissor(100, 280, 100, 100)"}
	if !reflect.DeepEqual(got, exp) {
		t.Errorf("got %v expected %v", got, exp)
	}
	ds = drawstate.Default().WithScissor(0, 0, 640, 480)
	got = bindCalls(&DrawState{}, ds)
	exp = []string{"Enable(SCISSOR_TEST)", "Scissor(0, 0, 640, 480)"}
	if !reflect.DeepEqual(got, exp) {
		t.Errorf("got %v expected %v", got, exp)
	}
}

func TestDefaultStateIdempotent(t *testing.T) {
	exp := []string{"Disable(SCISSOR_TEST)", "Disable(STENCIL_TEST)", "Disable(BLEND)"}
	if got := bindCalls(nil, drawstate.Default()); !reflect.DeepEqual(got, exp) {
		t.Errorf("from unknown state: got %v expected %v", got, exp)
	}
	old := drawstate.Alpha().WithStencil(drawstate.Inside(3)).WithScissor(1, 2, 3, 4)
	if got := bindCalls(&old, drawstate.Default()); !reflect.DeepEqual(got, exp) {
		t.Errorf("from %v: got %v expected %v", old, got, exp)
	}
}

func TestDeltaMinimality(t *testing.T) {
	base := drawstate.Alpha().WithStencil(drawstate.Inside(1)).WithScissor(10, 10, 20, 20)
	tests := []struct {
		name string
		ds   DrawState
		exp  []string
	}{
		{
			name: "identical",
			ds:   base,
			exp:  []string{},
		},
		{
			name: "blend",
			ds:   base.WithBlend(drawstate.BlendAdd),
			exp: []string{
				"Enable(BLEND)",
				"BlendEquationSeparate(FUNC_ADD, FUNC_ADD)",
				"BlendFuncSeparate(ONE, ONE, ONE, ONE)",
			},
		},
		{
			name: "stencil",
			ds:   base.WithStencil(drawstate.Outside(1)),
			exp: []string{
				"Enable(STENCIL_TEST)",
				"StencilFunc(NOTEQUAL, 1, 255)",
				"StencilMask(255)",
				"StencilOp(KEEP, KEEP, KEEP)",
			},
		},
		{
			name: "scissor",
			ds:   base.WithoutScissor(),
			exp:  []string{"Disable(SCISSOR_TEST)"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := bindCalls(&base, test.ds)
			if len(got) == 0 && len(test.exp) == 0 {
				return
			}
			if !reflect.DeepEqual(got, test.exp) {
				t.Errorf("got %v expected %v", got, test.exp)
			}
		})
	}
}

func TestStencilOps(t *testing.T) {
	tests := []struct {
		s   drawstate.Stencil
		exp []string
	}{
		{drawstate.Stencil{}, []string{"Disable(STENCIL_TEST)"}},
		{drawstate.Clip(2), []string{
			"Enable(STENCIL_TEST)", "StencilFunc(NEVER, 2, 255)", "StencilMask(255)", "StencilOp(REPLACE, KEEP, KEEP)",
		}},
		{drawstate.Inside(255), []string{
			"Enable(STENCIL_TEST)", "StencilFunc(EQUAL, 255, 255)", "StencilMask(255)", "StencilOp(KEEP, KEEP, KEEP)",
		}},
		{drawstate.Outside(0), []string{
			"Enable(STENCIL_TEST)", "StencilFunc(NOTEQUAL, 0, 255)", "StencilMask(255)", "StencilOp(KEEP, KEEP, KEEP)",
		}},
		{drawstate.Increment().Stencil, []string{
			"Enable(STENCIL_TEST)", "StencilFunc(NEVER, 0, 255)", "StencilMask(255)", "StencilOp(INCR, KEEP, KEEP)",
		}},
	}
	for _, test := range tests {
		rec := new(gltest.Recorder)
		applyStencil(rec, test.s)
		if got := rec.Strings(); !reflect.DeepEqual(got, test.exp) {
			t.Errorf("%v: got %v expected %v", test.s, got, test.exp)
		}
	}
}

func TestBlendModes(t *testing.T) {
	tests := []struct {
		b   drawstate.Blend
		exp []string
	}{
		{drawstate.BlendNone, []string{"Disable(BLEND)"}},
		{drawstate.BlendAlpha, []string{
			"Enable(BLEND)",
			"BlendEquationSeparate(FUNC_ADD, FUNC_ADD)",
			"BlendFuncSeparate(SRC_ALPHA, ONE_MINUS_SRC_ALPHA, SRC_ALPHA, ONE_MINUS_SRC_ALPHA)",
		}},
		{drawstate.BlendMultiply, []string{
			"Enable(BLEND)",
			"BlendEquationSeparate(FUNC_ADD, FUNC_ADD)",
			"BlendFuncSeparate(DST_COLOR, ZERO, DST_ALPHA, ZERO)",
		}},
		{drawstate.BlendInvert, []string{
			"Enable(BLEND)",
			"BlendColor(1, 1, 1, 1)",
			"BlendEquationSeparate(FUNC_SUBTRACT, FUNC_ADD)",
			"BlendFuncSeparate(CONSTANT_COLOR, SRC_COLOR, ZERO, ONE)",
		}},
		{drawstate.BlendLighter, []string{
			"Enable(BLEND)",
			"BlendEquationSeparate(FUNC_ADD, FUNC_ADD)",
			"BlendFuncSeparate(SRC_ALPHA, ONE, ZERO, ONE)",
		}},
	}
	for _, test := range tests {
		rec := new(gltest.Recorder)
		applyBlend(rec, test.b)
		if got := rec.Strings(); !reflect.DeepEqual(got, test.exp) {
			t.Errorf("%v: got %v expected %v", test.b, got, test.exp)
		}
	}
}
