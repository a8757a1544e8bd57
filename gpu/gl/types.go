// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Object handles. The zero value of each handle is the invalid object,
// except Uniform and Attribute locations, which use -1.
type (
	Buffer      struct{ V uint }
	Program     struct{ V uint }
	Shader      struct{ V uint }
	Texture     struct{ V uint }
	VertexArray struct{ V uint }
	Uniform     struct{ V int }
	Attribute   struct{ V int }
)

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (a Attribute) Valid() bool {
	return a.V != -1
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}

func (p Program) Equal(p2 Program) bool {
	return p == p2
}

func (t Texture) Equal(t2 Texture) bool {
	return t == t2
}

func (a VertexArray) Equal(a2 VertexArray) bool {
	return a == a2
}
