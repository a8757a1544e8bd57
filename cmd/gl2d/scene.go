// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"math"

	"gioui.org/gl2d/drawstate"
	"gioui.org/gl2d/gpu"
	"gioui.org/gl2d/text"
)

type scene struct {
	glyphs  *text.Cache
	checker *gpu.Texture
	images  []*gpu.Texture
}

var (
	background = [4]float32{0.12, 0.12, 0.14, 1}
	white      = [4]float32{1, 1, 1, 1}
	red        = [4]float32{0.9, 0.2, 0.2, 1}
	green      = [4]float32{0.2, 0.8, 0.3, 0.8}
	blue       = [4]float32{0.2, 0.4, 0.9, 1}
	yellow     = [4]float32{1, 0.85, 0.1, 1}
)

func (s *scene) draw(c gpu.Context, r *gpu.Renderer, t float64) error {
	r.ClearColor(background)
	r.ClearStencil(0)
	alpha := c.WithState(drawstate.Alpha())

	// Solid shapes.
	gpu.Rectangle(r, alpha, red, [4]float32{20, 20, 160, 100})
	gpu.Ellipse(r, alpha, green, [4]float32{120, 60, 140, 140}, 48)
	spin := alpha.Trans(330, 90).Rot(float32(t))
	gpu.Polygon(r, spin, blue, [][2]float32{{0, -60}, {52, 30}, {-52, 30}})

	// Textures.
	gpu.ImageUV(r, alpha, s.checker, white, [4]float32{420, 20, 160, 160}, [4]float32{0, 0, 2, 2})
	x := float32(600)
	for _, img := range s.images {
		w, h := img.Size()
		scale := 160 / float32(max(w, h))
		gpu.Image(r, alpha, img, white, [4]float32{x, 20, float32(w) * scale, float32(h) * scale})
		x += float32(w)*scale + 20
	}

	// Scissor: only the left half of the ellipse is drawn.
	scissored := c.WithState(drawstate.Alpha().WithScissor(20, 240, 90, 180))
	gpu.Ellipse(r, scissored, yellow, [4]float32{20, 240, 180, 180}, 64)

	// Nested stencil clipping: two overlapping shapes raise the
	// stencil to level 2 where they intersect.
	inc := c.WithState(drawstate.Increment())
	gpu.Ellipse(r, inc, white, [4]float32{260, 240, 180, 180}, 64)
	gpu.Rectangle(r, inc, white, [4]float32{350, 280, 180, 100})
	level, err := drawstate.Level(2)
	if err != nil {
		return err
	}
	inside := c.WithState(drawstate.Alpha().WithStencil(drawstate.Inside(level)))
	gpu.ImageUV(r, inside, s.checker, red, [4]float32{240, 220, 320, 220}, [4]float32{0, 0, 4, 4})
	outside := c.WithState(drawstate.Alpha().WithStencil(drawstate.Outside(level)))
	gpu.Rectangle(r, outside, [4]float32{1, 1, 1, 0.15}, [4]float32{240, 220, 320, 220})

	// Text.
	st := r.Stats()
	label := fmt.Sprintf("t=%.1fs  draws=%d  vertices=%d", math.Floor(t*10)/10, st.DrawCalls, st.Vertices)
	return text.DrawText(r, alpha, s.glyphs, 20, white, label, 20, float32(c.Viewport.Height)-20)
}

func (s *scene) release() {
	if s.checker != nil {
		s.checker.Release()
	}
	for _, img := range s.images {
		img.Release()
	}
}
