// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"gioui.org/gl2d/gpu"
	"gioui.org/gl2d/internal/gltest"
)

func newTestCache(t *testing.T, opts ...Option) (*Cache, *gltest.Recorder) {
	t.Helper()
	rec := new(gltest.Recorder)
	c, err := NewCache(goregular.TTF, GLTextures(rec), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c, rec
}

func TestParseError(t *testing.T) {
	if _, err := NewCache([]byte("not a font"), GLTextures(new(gltest.Recorder))); err == nil {
		t.Error("parsed garbage as a font")
	}
}

func TestCharacter(t *testing.T) {
	c, rec := newTestCache(t)
	ch, err := c.Character(32, 'A')
	if err != nil {
		t.Fatal(err)
	}
	if ch.Texture == nil {
		t.Fatal("no texture for A")
	}
	w, h := ch.Texture.Size()
	if w <= 0 || h <= 0 || h > 32 {
		t.Errorf("got a %dx%d bitmap for a 32px A", w, h)
	}
	if ch.Top() <= 0 || ch.Width() <= float32(w)/2 || ch.Height() != 0 {
		t.Errorf("unexpected metrics offset %v size %v", ch.Offset, ch.Size)
	}
	again, err := c.Character(32, 'A')
	if err != nil || again != ch {
		t.Errorf("character was not cached")
	}
	if n := rec.Count("CreateTexture"); n != 1 {
		t.Errorf("got %d textures created expected 1", n)
	}
	bigger, err := c.Character(48, 'A')
	if err != nil {
		t.Fatal(err)
	}
	if bigger.Width() <= ch.Width() {
		t.Errorf("48px advance %v not larger than 32px advance %v", bigger.Width(), ch.Width())
	}
}

func TestSpace(t *testing.T) {
	c, rec := newTestCache(t)
	ch, err := c.Character(16, ' ')
	if err != nil {
		t.Fatal(err)
	}
	if ch.Texture != nil || ch.Width() <= 0 {
		t.Errorf("got texture %v advance %v for a space", ch.Texture, ch.Width())
	}
	if n := rec.Count("CreateTexture"); n != 0 {
		t.Errorf("created %d textures for a space", n)
	}
}

func TestWidth(t *testing.T) {
	c, _ := newTestCache(t)
	if w, err := c.Width(20, ""); err != nil || w != 0 {
		t.Errorf("got %v, %v for the empty string", w, err)
	}
	one, err := c.Width(20, "a")
	if err != nil {
		t.Fatal(err)
	}
	two, err := c.Width(20, "aa")
	if err != nil {
		t.Fatal(err)
	}
	if two != 2*one {
		t.Errorf("got width %v for aa expected %v", two, 2*one)
	}
}

func TestEviction(t *testing.T) {
	c, rec := newTestCache(t, WithMaxGlyphs(2))
	for _, r := range "abc" {
		if _, err := c.Character(16, r); err != nil {
			t.Fatal(err)
		}
	}
	if c.Len() != 2 {
		t.Errorf("got %d cached characters expected 2", c.Len())
	}
	if n := rec.Live("texture"); n != 3 {
		t.Errorf("evicted texture released before Maintain: %d live", n)
	}
	c.Maintain()
	if n := rec.Live("texture"); n != 2 {
		t.Errorf("got %d live textures after Maintain expected 2", n)
	}
	c.Release()
	if n := rec.Live("texture"); n != 0 || rec.BadDeletes() != 0 {
		t.Errorf("got %d live textures, %d bad deletes after Release", n, rec.BadDeletes())
	}
}

type recordGraphics struct {
	rects int
	tex   []*gpu.Texture
}

func (g *recordGraphics) TriList(ds gpu.DrawState, color [4]float32, f func(emit func(vertices []float32))) {
	panic("untextured text")
}

func (g *recordGraphics) TriListUV(ds gpu.DrawState, color [4]float32, tex *gpu.Texture, f func(emit func(vertices, uvs []float32))) {
	g.tex = append(g.tex, tex)
	f(func(v, uv []float32) {
		g.rects += len(v) / 12
	})
}

func TestDrawText(t *testing.T) {
	c, _ := newTestCache(t)
	g := new(recordGraphics)
	var ctx gpu.Context
	if err := DrawText(g, ctx, c, 24, [4]float32{1, 1, 1, 1}, "A A", 10, 40); err != nil {
		t.Fatal(err)
	}
	if g.rects != 2 || len(g.tex) != 2 {
		t.Fatalf("got %d quads for %d textures expected 2", g.rects, len(g.tex))
	}
	if g.tex[0] != g.tex[1] {
		t.Error("repeated character drawn with different textures")
	}
}
