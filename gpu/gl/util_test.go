// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"testing"
)

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in  string
		ver [2]int
		es  bool
	}{
		{"3.3.0 NVIDIA 535.183.01", [2]int{3, 3}, false},
		{"2.1 Mesa 23.0.4", [2]int{2, 1}, false},
		{"4.6 (Core Profile) Mesa 24.2.8", [2]int{4, 6}, false},
		{"OpenGL ES 3.2 Mesa 24.2.8", [2]int{3, 2}, true},
		{"WebGL 1.0", [2]int{2, 0}, true},
	}
	for _, test := range tests {
		ver, es, err := ParseGLVersion(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if ver != test.ver || es != test.es {
			t.Errorf("%q: got %v (es %v) expected %v (es %v)", test.in, ver, es, test.ver, test.es)
		}
	}
	if _, _, err := ParseGLVersion("garbage"); err == nil {
		t.Error("parsed an invalid version string")
	}
}

func TestHasExtension(t *testing.T) {
	exts := "GL_ARB_framebuffer_sRGB GL_EXT_texture_sRGB"
	if !HasExtension(exts, "GL_ARB_framebuffer_sRGB") {
		t.Error("missing GL_ARB_framebuffer_sRGB")
	}
	if HasExtension(exts, "GL_ARB_framebuffer") {
		t.Error("matched an extension prefix")
	}
}

func TestErrorMessages(t *testing.T) {
	var err error = &CompileError{Stage: StageName(FRAGMENT_SHADER), Log: "0:3: 'x' undeclared"}
	if got, exp := err.Error(), "fragment shader compilation failed: 0:3: 'x' undeclared"; got != exp {
		t.Errorf("got %q expected %q", got, exp)
	}
	var cerr *CompileError
	if !errors.As(err, &cerr) || cerr.Stage != "fragment" {
		t.Errorf("got %v expected a fragment CompileError", err)
	}
	if got := trimLog("link failed\n\x00\x00"); got != "link failed" {
		t.Errorf("got %q expected %q", got, "link failed")
	}
}

func TestEnumString(t *testing.T) {
	tests := []struct {
		e   Enum
		exp string
	}{
		{ZERO, "ZERO"},
		{ONE, "ONE"},
		{TRIANGLES, "TRIANGLES"},
		{FRAMEBUFFER_SRGB, "FRAMEBUFFER_SRGB"},
		{INVALID_ENUM, "INVALID_ENUM"},
		{INVALID_VALUE, "INVALID_VALUE"},
		{INVALID_OPERATION, "INVALID_OPERATION"},
		{OUT_OF_MEMORY, "OUT_OF_MEMORY"},
		{0x1234abcd, "Enum(0x1234abcd)"},
	}
	for _, test := range tests {
		if got := test.e.String(); got != test.exp {
			t.Errorf("Enum(%#x).String() = %q, expected %q", uint(test.e), got, test.exp)
		}
	}
}
