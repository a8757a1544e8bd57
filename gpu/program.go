// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"

	"gioui.org/gl2d/gpu/gl"
)

// program is a linked built-in program together with its vertex array
// and resolved bindings.
type program struct {
	name       string
	obj        gl.Program
	vert, frag gl.Shader
	vao        gl.VertexArray
	attrs      []*attribute
	uniforms   map[string]gl.Uniform
}

// newProgram compiles and links src for the glsl tier and resolves
// every input, uniform and sampler it declares. A failure releases
// everything created so far.
func newProgram(f gl.Functions, src programSources, glsl GLSL) (*program, error) {
	stages := src.stages(glsl)
	p := &program{name: src.Name}
	var err error
	if p.vert, err = gl.CreateShader(f, gl.VERTEX_SHADER, stages.Vertex); err != nil {
		return nil, err
	}
	if p.frag, err = gl.CreateShader(f, gl.FRAGMENT_SHADER, stages.Fragment); err != nil {
		p.release(f)
		return nil, err
	}
	p.obj = f.CreateProgram()
	if !p.obj.Valid() {
		p.release(f)
		return nil, errors.New("glCreateProgram failed")
	}
	f.AttachShader(p.obj, p.vert)
	f.AttachShader(p.obj, p.frag)
	if glsl == GLSL150 {
		f.BindFragDataLocation(p.obj, 0, fragOutput)
	}
	if err := gl.LinkProgram(f, p.obj); err != nil {
		p.release(f)
		return nil, err
	}
	p.vao = f.CreateVertexArray()
	if !p.vao.Valid() {
		p.release(f)
		return nil, errors.New("glCreateVertexArray failed")
	}
	for _, in := range src.Inputs {
		a, err := newAttribute(f, p, in, false)
		if err != nil {
			p.release(f)
			return nil, err
		}
		p.attrs = append(p.attrs, a)
	}
	p.uniforms = make(map[string]gl.Uniform)
	for _, u := range src.Uniforms {
		loc := f.GetUniformLocation(p.obj, u.Name)
		if !loc.Valid() {
			p.release(f)
			return nil, &MissingBindingError{Program: p.name, Kind: "uniform", Name: u.Name}
		}
		p.uniforms[u.Name] = loc
	}
	if len(src.Textures) > 0 {
		f.UseProgram(p.obj)
		for _, tex := range src.Textures {
			loc := f.GetUniformLocation(p.obj, tex.Name)
			if !loc.Valid() {
				p.release(f)
				return nil, &MissingBindingError{Program: p.name, Kind: "uniform", Name: tex.Name}
			}
			f.Uniform1i(loc, tex.Binding)
		}
	}
	return p, nil
}

// attr returns the input named name. It panics for names not declared
// by the program sources.
func (p *program) attr(name string) *attribute {
	for _, a := range p.attrs {
		if a.name == name {
			return a
		}
	}
	panic("gl2d: no attribute " + name + " in " + p.name + " program")
}

// release deletes the program, its shaders, vertex array and attribute
// buffers. Released handles are zeroed so release is idempotent.
func (p *program) release(f gl.Functions) {
	for _, a := range p.attrs {
		a.release(f)
	}
	p.attrs = nil
	if p.vao.Valid() {
		f.DeleteVertexArray(p.vao)
		p.vao = gl.VertexArray{}
	}
	if p.obj.Valid() {
		f.DeleteProgram(p.obj)
		p.obj = gl.Program{}
	}
	if p.vert.Valid() {
		f.DeleteShader(p.vert)
		p.vert = gl.Shader{}
	}
	if p.frag.Valid() {
		f.DeleteShader(p.frag)
		p.frag = gl.Shader{}
	}
}
