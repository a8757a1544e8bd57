// SPDX-License-Identifier: Unlicense OR MIT

// Package gogl implements gl.Functions on top of the go-gl OpenGL 3.3
// core bindings. The bindings must be initialized with a current
// context, see New.
package gogl

import (
	"strings"
	stdunsafe "unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	gl2d "gioui.org/gl2d/gpu/gl"
	"gioui.org/gl2d/internal/unsafe"
)

// Functions issues GL calls through the go-gl function pointers.
type Functions struct{}

var _ gl2d.Functions = Functions{}

// New loads the GL function pointers for the context current on the
// calling thread.
func New() (Functions, error) {
	if err := gl.Init(); err != nil {
		return Functions{}, err
	}
	return Functions{}, nil
}

func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func bytePtr(b []byte) stdunsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return stdunsafe.Pointer(&b[0])
}

func (Functions) ActiveTexture(texture gl2d.Enum) {
	gl.ActiveTexture(uint32(texture))
}

func (Functions) AttachShader(p gl2d.Program, s gl2d.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (Functions) BindBuffer(target gl2d.Enum, b gl2d.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (Functions) BindFragDataLocation(p gl2d.Program, color uint, name string) {
	gl.BindFragDataLocation(uint32(p.V), uint32(color), cstr(name))
}

func (Functions) BindTexture(target gl2d.Enum, t gl2d.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (Functions) BindVertexArray(a gl2d.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

func (Functions) BlendColor(red, green, blue, alpha float32) {
	gl.BlendColor(red, green, blue, alpha)
}

func (Functions) BlendEquationSeparate(modeRGB, modeAlpha gl2d.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl2d.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

func (Functions) BufferData(target gl2d.Enum, src []byte, usage gl2d.Enum) {
	gl.BufferData(uint32(target), len(src), bytePtr(src), uint32(usage))
}

func (Functions) Clear(mask gl2d.Enum) {
	gl.Clear(uint32(mask))
}

func (Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (Functions) ClearStencil(s int) {
	gl.ClearStencil(int32(s))
}

func (Functions) CompileShader(s gl2d.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (Functions) CreateBuffer() gl2d.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gl2d.Buffer{V: uint(b)}
}

func (Functions) CreateProgram() gl2d.Program {
	return gl2d.Program{V: uint(gl.CreateProgram())}
}

func (Functions) CreateShader(ty gl2d.Enum) gl2d.Shader {
	return gl2d.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (Functions) CreateTexture() gl2d.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return gl2d.Texture{V: uint(t)}
}

func (Functions) CreateVertexArray() gl2d.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return gl2d.VertexArray{V: uint(a)}
}

func (Functions) DeleteBuffer(v gl2d.Buffer) {
	b := uint32(v.V)
	gl.DeleteBuffers(1, &b)
}

func (Functions) DeleteProgram(p gl2d.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (Functions) DeleteShader(s gl2d.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (Functions) DeleteTexture(v gl2d.Texture) {
	t := uint32(v.V)
	gl.DeleteTextures(1, &t)
}

func (Functions) DeleteVertexArray(a gl2d.VertexArray) {
	v := uint32(a.V)
	gl.DeleteVertexArrays(1, &v)
}

func (Functions) Disable(cap gl2d.Enum) {
	gl.Disable(uint32(cap))
}

func (Functions) DrawArrays(mode gl2d.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (Functions) Enable(cap gl2d.Enum) {
	gl.Enable(uint32(cap))
}

func (Functions) EnableVertexAttribArray(a gl2d.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (Functions) GenerateMipmap(target gl2d.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (Functions) GetAttribLocation(p gl2d.Program, name string) gl2d.Attribute {
	return gl2d.Attribute{V: int(gl.GetAttribLocation(uint32(p.V), cstr(name)))}
}

func (Functions) GetError() gl2d.Enum {
	return gl2d.Enum(gl.GetError())
}

func (Functions) GetInteger(pname gl2d.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (Functions) GetProgrami(p gl2d.Program, pname gl2d.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}

func (f Functions) GetProgramInfoLog(p gl2d.Program) string {
	n := f.GetProgrami(p, gl2d.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", n+1)
	gl.GetProgramInfoLog(uint32(p.V), int32(n), nil, gl.Str(log))
	return unsafe.GoString([]byte(log))
}

func (Functions) GetShaderi(s gl2d.Shader, pname gl2d.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}

func (f Functions) GetShaderInfoLog(s gl2d.Shader) string {
	n := f.GetShaderi(s, gl2d.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", n+1)
	gl.GetShaderInfoLog(uint32(s.V), int32(n), nil, gl.Str(log))
	return unsafe.GoString([]byte(log))
}

func (Functions) GetString(pname gl2d.Enum) string {
	s := gl.GetString(uint32(pname))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Functions) GetUniformLocation(p gl2d.Program, name string) gl2d.Uniform {
	return gl2d.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), cstr(name)))}
}

func (Functions) LinkProgram(p gl2d.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (Functions) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (Functions) ShaderSource(s gl2d.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(s.V), 1, csrc, nil)
}

func (Functions) StencilFunc(fn gl2d.Enum, ref int, mask uint) {
	gl.StencilFunc(uint32(fn), int32(ref), uint32(mask))
}

func (Functions) StencilMask(mask uint) {
	gl.StencilMask(uint32(mask))
}

func (Functions) StencilOp(sfail, dpfail, dppass gl2d.Enum) {
	gl.StencilOp(uint32(sfail), uint32(dpfail), uint32(dppass))
}

func (Functions) TexImage2D(target gl2d.Enum, level int, internalFormat int, width, height int, format, ty gl2d.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), bytePtr(data))
}

func (Functions) TexParameterfv(target, pname gl2d.Enum, params []float32) {
	gl.TexParameterfv(uint32(target), uint32(pname), &params[0])
}

func (Functions) TexParameteri(target, pname gl2d.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (Functions) Uniform1i(dst gl2d.Uniform, v int) {
	gl.Uniform1i(int32(dst.V), int32(v))
}

func (Functions) Uniform4f(dst gl2d.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (Functions) UseProgram(p gl2d.Program) {
	gl.UseProgram(uint32(p.V))
}

func (Functions) VertexAttribPointer(dst gl2d.Attrib, size int, ty gl2d.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
