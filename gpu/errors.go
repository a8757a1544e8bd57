// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"

	"gioui.org/gl2d/gpu/gl"
)

// ConstructionError reports a failure to create the device objects of
// a renderer. Err is one of *gl.CompileError, *gl.LinkError,
// *MissingBindingError or a device error.
type ConstructionError struct {
	// Op names the object being created, for example "colored program".
	Op  string
	Err error
}

// MissingBindingError is returned when a shader lacks a required
// attribute or uniform.
type MissingBindingError struct {
	Program string
	// Kind is "attribute" or "uniform".
	Kind string
	Name string
}

// TextureError reports a texture the device rejected.
type TextureError struct {
	Op   string
	Code gl.Enum
}

var (
	// ErrPixelSize is returned when a pixel buffer does not hold
	// exactly width*height RGBA8 pixels.
	ErrPixelSize = errors.New("pixel buffer size does not match texture dimensions")
	// ErrTextureSize is returned for empty textures or textures larger
	// than the device supports.
	ErrTextureSize = errors.New("unsupported texture size")
)

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("gl2d: %s: %v", e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("%s '%s' does not exist in the %s shader", e.Kind, e.Name, e.Program)
}

func (e *TextureError) Error() string {
	return fmt.Sprintf("gl2d: %s: glGetError: %v", e.Op, e.Code)
}

func glErr(f gl.Functions, op string) error {
	if st := f.GetError(); st != gl.NO_ERROR {
		return &TextureError{Op: op, Code: st}
	}
	return nil
}
