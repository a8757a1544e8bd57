// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"gioui.org/shader"
)

// GLSL is a shading language tier of the built-in programs.
type GLSL uint8

const (
	// GLSLAuto selects the tier from the GL version.
	GLSLAuto GLSL = iota
	// GLSL120 targets OpenGL 2.1 contexts.
	GLSL120
	// GLSL150 targets OpenGL 3.2 and later core contexts.
	GLSL150
)

func (g GLSL) String() string {
	switch g {
	case GLSLAuto:
		return "auto"
	case GLSL120:
		return "1.20"
	case GLSL150:
		return "1.50 core"
	default:
		return fmt.Sprintf("GLSL(%d)", uint8(g))
	}
}

// GLSLFor returns the shading language tier for a GL version as
// returned by gl.ParseGLVersion.
func GLSLFor(ver [2]int, es bool) (GLSL, error) {
	switch {
	case es:
		return 0, fmt.Errorf("OpenGL ES %d.%d is not supported", ver[0], ver[1])
	case ver[0] > 3 || ver[0] == 3 && ver[1] >= 2:
		return GLSL150, nil
	case ver[0] == 3 || ver[0] == 2 && ver[1] >= 1:
		return GLSL120, nil
	default:
		return 0, fmt.Errorf("OpenGL %d.%d is too old, 2.1 is required", ver[0], ver[1])
	}
}

// programSources describes a built-in program: its source text for
// every tier and the bindings the renderer resolves after linking.
type programSources struct {
	Name     string
	GLSL120  stageSources
	GLSL150  stageSources
	Inputs   []shader.InputLocation
	Uniforms []shader.UniformLocation
	Textures []shader.TextureBinding
}

type stageSources struct {
	Vertex, Fragment string
}

// fragOutput is the fragment output bound to color number 0 in 1.50
// programs.
const fragOutput = "o_Color"

func (s programSources) stages(glsl GLSL) stageSources {
	switch glsl {
	case GLSL120:
		return s.GLSL120
	case GLSL150:
		return s.GLSL150
	default:
		panic(fmt.Errorf("no %s shader for GLSL %v", s.Name, glsl))
	}
}

var (
	shader_colored = programSources{
		Name: "colored",
		GLSL120: stageSources{
			Vertex: `#version 120

attribute vec2 pos;
attribute vec4 color;

varying vec4 v_Color;

void main() {
	v_Color = color;
	gl_Position = vec4(pos, 0.0, 1.0);
}
`,
			Fragment: `#version 120

varying vec4 v_Color;

void main() {
	gl_FragColor = v_Color;
}
`,
		},
		GLSL150: stageSources{
			Vertex: `#version 150 core

in vec2 pos;
in vec4 color;

out vec4 v_Color;

void main() {
	v_Color = color;
	gl_Position = vec4(pos, 0.0, 1.0);
}
`,
			Fragment: `#version 150 core

in vec4 v_Color;

out vec4 o_Color;

void main() {
	o_Color = v_Color;
}
`,
		},
		Inputs: []shader.InputLocation{
			{Name: "pos", Location: 0, Type: shader.DataTypeFloat, Size: 2},
			{Name: "color", Location: 1, Type: shader.DataTypeFloat, Size: 4},
		},
	}
	shader_textured = programSources{
		Name: "textured",
		GLSL120: stageSources{
			Vertex: `#version 120

attribute vec2 pos;
attribute vec2 uv;

varying vec2 v_UV;

void main() {
	v_UV = uv;
	gl_Position = vec4(pos, 0.0, 1.0);
}
`,
			Fragment: `#version 120

uniform vec4 color;
uniform sampler2D s_texture;

varying vec2 v_UV;

void main() {
	gl_FragColor = texture2D(s_texture, v_UV) * color;
}
`,
		},
		GLSL150: stageSources{
			Vertex: `#version 150 core

in vec2 pos;
in vec2 uv;

out vec2 v_UV;

void main() {
	v_UV = uv;
	gl_Position = vec4(pos, 0.0, 1.0);
}
`,
			Fragment: `#version 150 core

uniform vec4 color;
uniform sampler2D s_texture;

in vec2 v_UV;

out vec4 o_Color;

void main() {
	o_Color = texture(s_texture, v_UV) * color;
}
`,
		},
		Inputs: []shader.InputLocation{
			{Name: "pos", Location: 0, Type: shader.DataTypeFloat, Size: 2},
			{Name: "uv", Location: 1, Type: shader.DataTypeFloat, Size: 2},
		},
		Uniforms: []shader.UniformLocation{
			{Name: "color", Type: shader.DataTypeFloat, Size: 4},
		},
		Textures: []shader.TextureBinding{
			{Name: "s_texture", Binding: 0},
		},
	}
)
