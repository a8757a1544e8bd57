// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"

	"gioui.org/gl2d/gpu/gl"
	"gioui.org/gl2d/internal/unsafe"
	"gioui.org/shader"
)

// attribute is a vertex shader input fed from its own tightly packed
// buffer. The buffer is re-specified on every upload.
type attribute struct {
	name string
	loc  gl.Attrib
	buf  gl.Buffer
	size int
}

func newAttribute(f gl.Functions, p *program, in shader.InputLocation, normalize bool) (*attribute, error) {
	loc := f.GetAttribLocation(p.obj, in.Name)
	if !loc.Valid() {
		return nil, &MissingBindingError{Program: p.name, Kind: "attribute", Name: in.Name}
	}
	typ, err := glDataType(in.Type)
	if err != nil {
		return nil, fmt.Errorf("attribute %s: %w", in.Name, err)
	}
	buf := f.CreateBuffer()
	if !buf.Valid() {
		return nil, errors.New("glCreateBuffer failed")
	}
	a := &attribute{
		name: in.Name,
		loc:  gl.Attrib(loc.V),
		buf:  buf,
		size: in.Size,
	}
	f.BindVertexArray(p.vao)
	f.BindBuffer(gl.ARRAY_BUFFER, buf)
	f.VertexAttribPointer(a.loc, in.Size, typ, normalize, 0, 0)
	return a, nil
}

// upload replaces the buffer contents with data and enables the
// attribute for the next draw.
func (a *attribute) upload(f gl.Functions, data []float32) {
	f.EnableVertexAttribArray(a.loc)
	f.BindBuffer(gl.ARRAY_BUFFER, a.buf)
	f.BufferData(gl.ARRAY_BUFFER, unsafe.BytesView(data), gl.DYNAMIC_DRAW)
}

func (a *attribute) release(f gl.Functions) {
	if a.buf.Valid() {
		f.DeleteBuffer(a.buf)
		a.buf = gl.Buffer{}
	}
}

func glDataType(t shader.DataType) (gl.Enum, error) {
	switch t {
	case shader.DataTypeFloat:
		return gl.FLOAT, nil
	case shader.DataTypeShort:
		return gl.SHORT, nil
	default:
		return 0, fmt.Errorf("unsupported data type %d", t)
	}
}
