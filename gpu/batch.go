// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"gioui.org/gl2d/gpu/gl"
)

// colorBatch accumulates colored vertices. The buffers are allocated
// once at full capacity; only the first offset vertices are pending.
type colorBatch struct {
	pos    []float32
	colors []float32
	offset int
}

// textureBatch accumulates vertices sampling a single texture with a
// single color.
type textureBatch struct {
	pos     []float32
	uvs     []float32
	offset  int
	texture gl.Texture
	color   [4]float32
}

func newColorBatch(capacity int) colorBatch {
	return colorBatch{
		pos:    make([]float32, capacity*2),
		colors: make([]float32, capacity*4),
	}
}

func newTextureBatch(capacity int) textureBatch {
	return textureBatch{
		pos: make([]float32, capacity*2),
		uvs: make([]float32, capacity*2),
	}
}

// add appends the vertices with color replicated to each of them. The
// caller ensures the batch has room.
func (b *colorBatch) add(vertices []float32, color [4]float32) {
	n := len(vertices) / 2
	copy(b.pos[b.offset*2:], vertices)
	cols := b.colors[b.offset*4 : (b.offset+n)*4]
	for i := 0; i < len(cols); i += 4 {
		copy(cols[i:i+4], color[:])
	}
	b.offset += n
}

func (b *textureBatch) add(vertices, uvs []float32) {
	copy(b.pos[b.offset*2:], vertices)
	copy(b.uvs[b.offset*2:], uvs)
	b.offset += len(vertices) / 2
}

// TriList draws triangles in color. The function f is called once and
// emits vertex chunks as flat x, y pairs in normalized device
// coordinates; the slices are not retained. Chunks larger than the
// batch are split transparently.
func (r *Renderer) TriList(ds DrawState, color [4]float32, f func(emit func(vertices []float32))) {
	r.mustBeInFrame("TriList")
	if r.texBatch.offset > 0 {
		r.flushTextured(FlushProgram)
	}
	if !r.stateValid || r.state != ds {
		r.flushColored(FlushState)
		r.useProgram(r.colored.obj)
		r.bindState(ds)
	}
	col := r.linearColor(color)
	capacity := r.cnf.Capacity
	b := &r.colorBatch
	f(func(vertices []float32) {
		if len(vertices)%2 != 0 {
			panic("gl2d: TriList: odd number of vertex coordinates")
		}
		n := len(vertices) / 2
		if b.offset+n > capacity {
			r.flushColored(FlushCapacity)
		}
		for n > capacity {
			b.add(vertices[:capacity*2], col)
			r.flushColored(FlushCapacity)
			vertices = vertices[capacity*2:]
			n -= capacity
		}
		b.add(vertices, col)
	})
}

// TriListUV draws triangles sampling tex, multiplied by color. The
// function f emits positions in normalized device coordinates and the
// matching texture coordinates, one uv pair per position.
func (r *Renderer) TriListUV(ds DrawState, color [4]float32, tex *Texture, f func(emit func(vertices, uvs []float32))) {
	r.mustBeInFrame("TriListUV")
	if !tex.obj.Valid() {
		panic("gl2d: TriListUV: texture is released")
	}
	if r.colorBatch.offset > 0 {
		r.flushColored(FlushProgram)
	}
	if !r.stateValid || r.state != ds {
		r.flushTextured(FlushState)
		r.useProgram(r.textured.obj)
		r.bindState(ds)
	}
	col := r.linearColor(color)
	b := &r.texBatch
	if !b.texture.Equal(tex.obj) || b.color != col {
		r.flushTextured(FlushTexture)
		b.texture = tex.obj
		b.color = col
	}
	tex.drawer = r
	capacity := r.cnf.Capacity
	f(func(vertices, uvs []float32) {
		if len(vertices)%2 != 0 {
			panic("gl2d: TriListUV: odd number of vertex coordinates")
		}
		if len(uvs) != len(vertices) {
			panic("gl2d: TriListUV: uv and vertex counts differ")
		}
		n := len(vertices) / 2
		if b.offset+n > capacity {
			r.flushTextured(FlushCapacity)
		}
		for n > capacity {
			b.add(vertices[:capacity*2], uvs[:capacity*2])
			r.flushTextured(FlushCapacity)
			vertices, uvs = vertices[capacity*2:], uvs[capacity*2:]
			n -= capacity
		}
		b.add(vertices, uvs)
	})
}

// flushColored draws the pending colored vertices, if any.
func (r *Renderer) flushColored(reason FlushReason) {
	b := &r.colorBatch
	if b.offset == 0 {
		return
	}
	f := r.funcs
	p := r.colored
	r.useProgram(p.obj)
	f.BindVertexArray(p.vao)
	f.Disable(gl.CULL_FACE)
	p.color.upload(f, b.colors[:b.offset*4])
	p.pos.upload(f, b.pos[:b.offset*2])
	f.DrawArrays(gl.TRIANGLES, 0, b.offset)
	r.stats.flushed(reason, b.offset)
	b.offset = 0
}

// flushTextured draws the pending textured vertices, if any.
func (r *Renderer) flushTextured(reason FlushReason) {
	b := &r.texBatch
	if b.offset == 0 {
		return
	}
	f := r.funcs
	p := r.textured
	r.useProgram(p.obj)
	f.BindVertexArray(p.vao)
	f.Disable(gl.CULL_FACE)
	f.BindTexture(gl.TEXTURE_2D, b.texture)
	c := b.color
	f.Uniform4f(p.color, c[0], c[1], c[2], c[3])
	p.pos.upload(f, b.pos[:b.offset*2])
	p.uv.upload(f, b.uvs[:b.offset*2])
	f.DrawArrays(gl.TRIANGLES, 0, b.offset)
	r.stats.flushed(reason, b.offset)
	b.offset = 0
}

// flush draws whichever batch is pending.
func (r *Renderer) flush(reason FlushReason) {
	r.flushColored(reason)
	r.flushTextured(reason)
}
