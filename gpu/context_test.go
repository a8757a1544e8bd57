// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"math"
	"testing"

	"gioui.org/gl2d/drawstate"
)

type captureGraphics struct {
	states   []DrawState
	vertices []float32
	uvs      []float32
	tex      *Texture
}

func (g *captureGraphics) TriList(ds DrawState, color [4]float32, f func(emit func(vertices []float32))) {
	g.states = append(g.states, ds)
	f(func(v []float32) {
		g.vertices = append(g.vertices, v...)
	})
}

func (g *captureGraphics) TriListUV(ds DrawState, color [4]float32, tex *Texture, f func(emit func(vertices, uvs []float32))) {
	g.states = append(g.states, ds)
	g.tex = tex
	f(func(v, uv []float32) {
		g.vertices = append(g.vertices, v...)
		g.uvs = append(g.uvs, uv...)
	})
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestContextPoint(t *testing.T) {
	c := newContext(Viewport{Width: 640, Height: 480})
	tests := []struct {
		name       string
		c          Context
		x, y       float32
		expX, expY float32
	}{
		{"origin", c, 0, 0, -1, 1},
		{"corner", c, 640, 480, 1, -1},
		{"center", c, 320, 240, 0, 0},
		{"translated", c.Trans(10, 20), 0, 0, 20.0/640 - 1, 1 - 40.0/480},
		{"scaled", c.Scale(2, 2), 160, 120, 0, 0},
		{"translated and scaled", c.Trans(320, 240).Scale(2, 2), 10, 0, 20.0 / 320, 0},
		{"rotated", c.Rot(math.Pi / 2), 1, 0, -1, 1 - 2.0/480},
	}
	for _, test := range tests {
		x, y := test.c.Point(test.x, test.y)
		if !near(x, test.expX) || !near(y, test.expY) {
			t.Errorf("%s: Point(%v, %v) = (%v, %v), expected (%v, %v)", test.name, test.x, test.y, x, y, test.expX, test.expY)
		}
	}
}

func TestEmptyViewport(t *testing.T) {
	c := newContext(Viewport{})
	if x, y := c.Point(0.5, -0.5); x != 0.5 || y != -0.5 {
		t.Errorf("got (%v, %v) expected the identity transform", x, y)
	}
}

func TestRectangle(t *testing.T) {
	g := new(captureGraphics)
	c := newContext(Viewport{Width: 100, Height: 100}).WithState(drawstate.Alpha())
	Rectangle(g, c, [4]float32{1, 1, 1, 1}, [4]float32{0, 0, 50, 100})
	exp := []float32{
		-1, 1, 0, 1, -1, -1,
		0, 1, 0, -1, -1, -1,
	}
	if len(g.vertices) != len(exp) {
		t.Fatalf("got %d coordinates expected %d", len(g.vertices), len(exp))
	}
	for i := range exp {
		if !near(g.vertices[i], exp[i]) {
			t.Errorf("coordinate %d: got %v expected %v", i, g.vertices[i], exp[i])
		}
	}
	if len(g.states) != 1 || g.states[0] != drawstate.Alpha() {
		t.Errorf("got states %v", g.states)
	}
}

func TestImageUV(t *testing.T) {
	g := new(captureGraphics)
	c := newContext(Viewport{Width: 100, Height: 100})
	tex := new(Texture)
	ImageUV(g, c, tex, [4]float32{1, 1, 1, 1}, [4]float32{0, 0, 10, 10}, [4]float32{0.25, 0, 0.5, 1})
	exp := []float32{
		0.25, 0, 0.5, 0, 0.25, 1,
		0.5, 0, 0.5, 1, 0.25, 1,
	}
	if g.tex != tex || len(g.uvs) != len(exp) {
		t.Fatalf("got texture %p uvs %v", g.tex, g.uvs)
	}
	for i := range exp {
		if g.uvs[i] != exp[i] {
			t.Errorf("uv %d: got %v expected %v", i, g.uvs[i], exp[i])
		}
	}
	if len(g.vertices) != len(g.uvs) {
		t.Errorf("got %d coordinates for %d uvs", len(g.vertices), len(g.uvs))
	}
}

func TestPolygon(t *testing.T) {
	c := newContext(Viewport{Width: 2, Height: 2})
	g := new(captureGraphics)
	Polygon(g, c, [4]float32{}, [][2]float32{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	exp := []float32{
		-1, 1, 1, 1, 1, -1,
		-1, 1, 1, -1, -1, -1,
	}
	if len(g.vertices) != len(exp) {
		t.Fatalf("got %v expected %v", g.vertices, exp)
	}
	for i := range exp {
		if !near(g.vertices[i], exp[i]) {
			t.Errorf("coordinate %d: got %v expected %v", i, g.vertices[i], exp[i])
		}
	}

	g = new(captureGraphics)
	Polygon(g, c, [4]float32{}, [][2]float32{{0, 0}, {1, 1}})
	if len(g.states) != 0 {
		t.Error("degenerate polygon was drawn")
	}

	g = new(captureGraphics)
	Ellipse(g, c, [4]float32{}, [4]float32{0, 0, 2, 2}, 1)
	if got := len(g.vertices); got != 6 {
		t.Errorf("got %d coordinates for a minimal ellipse, expected one triangle", got)
	}
}
