// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gioui.org/gl2d/gpu"
)

func TestParseGLSL(t *testing.T) {
	tests := []struct {
		in  string
		exp gpu.GLSL
	}{
		{"", gpu.GLSLAuto},
		{"auto", gpu.GLSLAuto},
		{"120", gpu.GLSL120},
		{"150", gpu.GLSL150},
	}
	for _, test := range tests {
		if got, err := parseGLSL(test.in); err != nil || got != test.exp {
			t.Errorf("parseGLSL(%q) = %v, %v expected %v", test.in, got, err, test.exp)
		}
	}
	if _, err := parseGLSL("330"); err == nil {
		t.Error("accepted -glsl 330")
	}
}

func TestLoadImages(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, size := range []int{16, 8, 4} {
		path := filepath.Join(dir, filepath.Base(t.Name())+string(rune('a'+size))+".png")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, checkerboard(size, 2)); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	imgs, err := loadImages(paths)
	if err != nil {
		t.Fatal(err)
	}
	for i, size := range []int{16, 8, 4} {
		if got := imgs[i].Rect.Dx(); got != size {
			t.Errorf("image %d: got width %d expected %d", i, got, size)
		}
	}
	if _, err := loadImages(append(paths, filepath.Join(dir, "missing.png"))); err == nil {
		t.Error("loaded a missing file")
	}
}

func TestCheckerboard(t *testing.T) {
	img := checkerboard(4, 2)
	if a, b := img.NRGBAAt(0, 0), img.NRGBAAt(2, 0); a == b || a != img.NRGBAAt(2, 2) {
		t.Errorf("unexpected cells %v %v", a, b)
	}
}
