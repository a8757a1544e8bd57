// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides a recording gl.Functions for tests that
// need to observe the exact device calls issued by the renderer.
package gltest

import (
	"fmt"
	"slices"
	"strings"

	"gioui.org/gl2d/gpu/gl"
)

// Call is a recorded device call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder implements gl.Functions by recording every call. Object
// creation returns fresh non-zero handles. The exported fields adjust
// the simulated driver.
type Recorder struct {
	// Version is returned for GL_VERSION. Defaults to "3.3.0".
	Version string
	// Extensions is returned for GL_EXTENSIONS.
	Extensions string
	// MaxTextureSize is returned for GL_MAX_TEXTURE_SIZE. Defaults to 4096.
	MaxTextureSize int
	// CompileLog fails compilation of shaders of the given type with
	// the log.
	CompileLog map[gl.Enum]string
	// LinkLog, if set, fails program linking with the log.
	LinkLog string
	// MissingAttributes lists the attribute names reported absent.
	MissingAttributes []string
	// MissingUniforms lists the uniform names reported absent.
	MissingUniforms []string
	// Error is returned, once, by the next GetError.
	Error gl.Enum

	calls      []Call
	next       uint
	locs       map[string]int
	live       map[string]int
	badDeletes int
	// Buffer contents by buffer handle, as uploaded by BufferData.
	bufData   map[uint][]byte
	arrayBuf  uint
	shaderTyp map[uint]gl.Enum
}

var _ gl.Functions = (*Recorder)(nil)

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) create(kind string) uint {
	if r.live == nil {
		r.live = make(map[string]int)
	}
	r.next++
	r.live[kind]++
	return r.next
}

func (r *Recorder) delete(kind string, v uint) {
	if v == 0 || r.live[kind] == 0 {
		r.badDeletes++
		return
	}
	r.live[kind]--
}

// Calls returns the recorded calls.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Reset forgets the recorded calls. Object bookkeeping is kept.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

// Filter returns the recorded calls whose name is in names.
func (r *Recorder) Filter(names ...string) []Call {
	var res []Call
	for _, c := range r.calls {
		if slices.Contains(names, c.Name) {
			res = append(res, c)
		}
	}
	return res
}

// Count returns the number of recorded calls named name.
func (r *Recorder) Count(name string) int {
	return len(r.Filter(name))
}

// Strings returns the recorded calls formatted with Call.String.
func (r *Recorder) Strings() []string {
	res := make([]string, len(r.calls))
	for i, c := range r.calls {
		res[i] = c.String()
	}
	return res
}

// Live returns the number of live objects of kind ("buffer", "texture",
// "program", "shader", "vertexarray").
func (r *Recorder) Live(kind string) int {
	return r.live[kind]
}

// BadDeletes returns the number of deletions of zero or already
// deleted objects.
func (r *Recorder) BadDeletes() int {
	return r.badDeletes
}

// Data returns the last contents uploaded to buffer b.
func (r *Recorder) Data(b gl.Buffer) []byte {
	return r.bufData[b.V]
}

func (r *Recorder) ActiveTexture(texture gl.Enum) {
	r.record("ActiveTexture", texture)
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p.V, s.V)
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	if target == gl.ARRAY_BUFFER {
		r.arrayBuf = b.V
	}
	r.record("BindBuffer", target, b.V)
}

func (r *Recorder) BindFragDataLocation(p gl.Program, color uint, name string) {
	r.record("BindFragDataLocation", p.V, color, name)
}

func (r *Recorder) BindTexture(target gl.Enum, t gl.Texture) {
	r.record("BindTexture", target, t.V)
}

func (r *Recorder) BindVertexArray(a gl.VertexArray) {
	r.record("BindVertexArray", a.V)
}

func (r *Recorder) BlendColor(red, green, blue, alpha float32) {
	r.record("BlendColor", red, green, blue, alpha)
}

func (r *Recorder) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	r.record("BlendEquationSeparate", modeRGB, modeAlpha)
}

func (r *Recorder) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl.Enum) {
	r.record("BlendFuncSeparate", srcRGB, dstRGB, srcA, dstA)
}

func (r *Recorder) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	if r.bufData == nil {
		r.bufData = make(map[uint][]byte)
	}
	if target == gl.ARRAY_BUFFER {
		r.bufData[r.arrayBuf] = slices.Clone(src)
	}
	r.record("BufferData", target, len(src), usage)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) ClearStencil(s int) {
	r.record("ClearStencil", s)
}

func (r *Recorder) CompileShader(s gl.Shader) {
	r.record("CompileShader", s.V)
}

func (r *Recorder) CreateBuffer() gl.Buffer {
	b := gl.Buffer{V: r.create("buffer")}
	r.record("CreateBuffer")
	return b
}

func (r *Recorder) CreateProgram() gl.Program {
	p := gl.Program{V: r.create("program")}
	r.record("CreateProgram")
	return p
}

func (r *Recorder) CreateShader(ty gl.Enum) gl.Shader {
	if r.shaderTyp == nil {
		r.shaderTyp = make(map[uint]gl.Enum)
	}
	s := gl.Shader{V: r.create("shader")}
	r.shaderTyp[s.V] = ty
	r.record("CreateShader", ty)
	return s
}

func (r *Recorder) CreateTexture() gl.Texture {
	t := gl.Texture{V: r.create("texture")}
	r.record("CreateTexture")
	return t
}

func (r *Recorder) CreateVertexArray() gl.VertexArray {
	a := gl.VertexArray{V: r.create("vertexarray")}
	r.record("CreateVertexArray")
	return a
}

func (r *Recorder) DeleteBuffer(v gl.Buffer) {
	r.delete("buffer", v.V)
	r.record("DeleteBuffer", v.V)
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	r.delete("program", p.V)
	r.record("DeleteProgram", p.V)
}

func (r *Recorder) DeleteShader(s gl.Shader) {
	r.delete("shader", s.V)
	r.record("DeleteShader", s.V)
}

func (r *Recorder) DeleteTexture(v gl.Texture) {
	r.delete("texture", v.V)
	r.record("DeleteTexture", v.V)
}

func (r *Recorder) DeleteVertexArray(a gl.VertexArray) {
	r.delete("vertexarray", a.V)
	r.record("DeleteVertexArray", a.V)
}

func (r *Recorder) Disable(cap gl.Enum) {
	r.record("Disable", cap)
}

func (r *Recorder) DrawArrays(mode gl.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) Enable(cap gl.Enum) {
	r.record("Enable", cap)
}

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray", a)
}

func (r *Recorder) GenerateMipmap(target gl.Enum) {
	r.record("GenerateMipmap", target)
}

func (r *Recorder) location(prog gl.Program, name string) int {
	if r.locs == nil {
		r.locs = make(map[string]int)
	}
	key := fmt.Sprintf("%d/%s", prog.V, name)
	loc, ok := r.locs[key]
	if !ok {
		loc = len(r.locs)
		r.locs[key] = loc
	}
	return loc
}

func (r *Recorder) GetAttribLocation(p gl.Program, name string) gl.Attribute {
	r.record("GetAttribLocation", p.V, name)
	if slices.Contains(r.MissingAttributes, name) {
		return gl.Attribute{V: -1}
	}
	return gl.Attribute{V: r.location(p, name)}
}

func (r *Recorder) GetError() gl.Enum {
	err := r.Error
	r.Error = gl.NO_ERROR
	return err
}

func (r *Recorder) GetInteger(pname gl.Enum) int {
	r.record("GetInteger", pname)
	switch pname {
	case gl.MAX_TEXTURE_SIZE:
		if r.MaxTextureSize == 0 {
			return 4096
		}
		return r.MaxTextureSize
	}
	return 0
}

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	switch pname {
	case gl.LINK_STATUS:
		if r.LinkLog != "" {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.INFO_LOG_LENGTH:
		return len(r.LinkLog)
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string {
	return r.LinkLog
}

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	log := r.CompileLog[r.shaderTyp[s.V]]
	switch pname {
	case gl.COMPILE_STATUS:
		if log != "" {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.INFO_LOG_LENGTH:
		return len(log)
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string {
	return r.CompileLog[r.shaderTyp[s.V]]
}

func (r *Recorder) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VERSION:
		if r.Version == "" {
			return "3.3.0"
		}
		return r.Version
	case gl.EXTENSIONS:
		return r.Extensions
	}
	return ""
}

func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	r.record("GetUniformLocation", p.V, name)
	if slices.Contains(r.MissingUniforms, name) {
		return gl.Uniform{V: -1}
	}
	return gl.Uniform{V: r.location(p, name)}
}

func (r *Recorder) LinkProgram(p gl.Program) {
	r.record("LinkProgram", p.V)
}

func (r *Recorder) Scissor(x, y, width, height int32) {
	r.record("Scissor", x, y, width, height)
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	r.record("ShaderSource", s.V)
}

func (r *Recorder) StencilFunc(fn gl.Enum, ref int, mask uint) {
	r.record("StencilFunc", fn, ref, mask)
}

func (r *Recorder) StencilMask(mask uint) {
	r.record("StencilMask", mask)
}

func (r *Recorder) StencilOp(sfail, dpfail, dppass gl.Enum) {
	r.record("StencilOp", sfail, dpfail, dppass)
}

func (r *Recorder) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
	r.record("TexImage2D", target, level, internalFormat, width, height, format, ty, len(data))
}

func (r *Recorder) TexParameterfv(target, pname gl.Enum, params []float32) {
	r.record("TexParameterfv", target, pname, slices.Clone(params))
}

func (r *Recorder) TexParameteri(target, pname gl.Enum, param int) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) Uniform1i(dst gl.Uniform, v int) {
	r.record("Uniform1i", dst.V, v)
}

func (r *Recorder) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	r.record("Uniform4f", dst.V, v0, v1, v2, v3)
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram", p.V)
}

func (r *Recorder) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}
