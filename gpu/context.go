// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Graphics is the drawing surface of a frame. *Renderer implements it.
type Graphics interface {
	TriList(ds DrawState, color [4]float32, f func(emit func(vertices []float32)))
	TriListUV(ds DrawState, color [4]float32, tex *Texture, f func(emit func(vertices, uvs []float32)))
}

var _ Graphics = (*Renderer)(nil)

// Context carries the transform and draw state of drawing operations.
// Coordinates are pixels with the origin in the upper left corner of
// the viewport until transformed.
type Context struct {
	Viewport  Viewport
	Transform mgl32.Mat3
	DrawState DrawState
}

func newContext(vp Viewport) Context {
	return Context{
		Viewport:  vp,
		Transform: absTransform(vp),
	}
}

// absTransform maps viewport pixels to normalized device coordinates,
// flipping the y axis.
func absTransform(vp Viewport) mgl32.Mat3 {
	w, h := float32(vp.Width), float32(vp.Height)
	if w == 0 || h == 0 {
		return mgl32.Ident3()
	}
	return mgl32.Mat3{
		2 / w, 0, 0,
		0, -2 / h, 0,
		-1, 1, 1,
	}
}

// Trans translates by x, y in the current coordinate system.
func (c Context) Trans(x, y float32) Context {
	c.Transform = c.Transform.Mul3(mgl32.Translate2D(x, y))
	return c
}

// Scale scales the current coordinate system.
func (c Context) Scale(sx, sy float32) Context {
	c.Transform = c.Transform.Mul3(mgl32.Scale2D(sx, sy))
	return c
}

// Rot rotates the current coordinate system by radians, clockwise on
// screen.
func (c Context) Rot(radians float32) Context {
	c.Transform = c.Transform.Mul3(mgl32.HomogRotate2D(radians))
	return c
}

// WithState returns c with draw state ds.
func (c Context) WithState(ds DrawState) Context {
	c.DrawState = ds
	return c
}

// Point transforms x, y to normalized device coordinates.
func (c Context) Point(x, y float32) (float32, float32) {
	v := c.Transform.Mul3x1(mgl32.Vec3{x, y, 1})
	return v[0], v[1]
}

// Rectangle fills the rectangle x, y, w, h with color.
func Rectangle(g Graphics, c Context, color [4]float32, rect [4]float32) {
	var verts [12]float32
	quad(&verts, c, rect)
	g.TriList(c.DrawState, color, func(emit func([]float32)) {
		emit(verts[:])
	})
}

// Image draws tex stretched over the rectangle x, y, w, h, multiplied
// by color.
func Image(g Graphics, c Context, tex *Texture, color [4]float32, rect [4]float32) {
	ImageUV(g, c, tex, color, rect, [4]float32{0, 0, 1, 1})
}

// ImageUV is like Image but samples the texture coordinates
// u0, v0, u1, v1 only.
func ImageUV(g Graphics, c Context, tex *Texture, color [4]float32, rect, src [4]float32) {
	var verts [12]float32
	quad(&verts, c, rect)
	u0, v0, u1, v1 := src[0], src[1], src[2], src[3]
	uvs := [12]float32{
		u0, v0, u1, v0, u0, v1,
		u1, v0, u1, v1, u0, v1,
	}
	g.TriListUV(c.DrawState, color, tex, func(emit func(vertices, uvs []float32)) {
		emit(verts[:], uvs[:])
	})
}

// Polygon fills the convex polygon with the given pixel corners.
func Polygon(g Graphics, c Context, color [4]float32, points [][2]float32) {
	if len(points) < 3 {
		return
	}
	verts := make([]float32, 0, (len(points)-2)*6)
	x0, y0 := c.Point(points[0][0], points[0][1])
	for i := 1; i+1 < len(points); i++ {
		x1, y1 := c.Point(points[i][0], points[i][1])
		x2, y2 := c.Point(points[i+1][0], points[i+1][1])
		verts = append(verts, x0, y0, x1, y1, x2, y2)
	}
	g.TriList(c.DrawState, color, func(emit func([]float32)) {
		emit(verts)
	})
}

// Ellipse fills the ellipse inscribed in the rectangle x, y, w, h,
// approximated by a polygon with the given number of sides.
func Ellipse(g Graphics, c Context, color [4]float32, rect [4]float32, segments int) {
	if segments < 3 {
		segments = 3
	}
	cx, cy := rect[0]+rect[2]/2, rect[1]+rect[3]/2
	rx, ry := rect[2]/2, rect[3]/2
	points := make([][2]float32, segments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = [2]float32{
			cx + rx*float32(math.Cos(a)),
			cy + ry*float32(math.Sin(a)),
		}
	}
	Polygon(g, c, color, points)
}

func quad(verts *[12]float32, c Context, rect [4]float32) {
	x0, y0 := c.Point(rect[0], rect[1])
	x1, y1 := c.Point(rect[0]+rect[2], rect[1])
	x2, y2 := c.Point(rect[0], rect[1]+rect[3])
	x3, y3 := c.Point(rect[0]+rect[2], rect[1]+rect[3])
	*verts = [12]float32{
		x0, y0, x1, y1, x2, y2,
		x1, y1, x3, y3, x2, y2,
	}
}
