// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the subset of the OpenGL 2.1/3.x API issued by the
// renderer. Implementations wrap a current context and must only be
// called from the goroutine that owns it.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindFragDataLocation(p Program, color uint, name string)
	BindTexture(target Enum, t Texture)
	BindVertexArray(a VertexArray)
	BlendColor(red, green, blue, alpha float32)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum)
	BufferData(target Enum, src []byte, usage Enum)
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearStencil(s int)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	CreateVertexArray() VertexArray
	DeleteBuffer(v Buffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(v Texture)
	DeleteVertexArray(a VertexArray)
	Disable(cap Enum)
	DrawArrays(mode Enum, first, count int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	GenerateMipmap(target Enum)
	GetAttribLocation(p Program, name string) Attribute
	GetError() Enum
	GetInteger(pname Enum) int
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	Scissor(x, y, width, height int32)
	ShaderSource(s Shader, src string)
	StencilFunc(fn Enum, ref int, mask uint)
	StencilMask(mask uint)
	StencilOp(sfail, dpfail, dppass Enum)
	TexImage2D(target Enum, level int, internalFormat int, width, height int, format, ty Enum, data []byte)
	TexParameterfv(target, pname Enum, params []float32)
	TexParameteri(target, pname Enum, param int)
	Uniform1i(dst Uniform, v int)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
