// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"gioui.org/gl2d/gpu/gl"
)

// DecodeImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image into
// tightly packed non-premultiplied RGBA8 pixels. It issues no device
// calls and may run on any goroutine.
func DecodeImage(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

// DecodeImageFile is DecodeImage for the file at path.
func DecodeImageFile(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// NewTextureFromImage uploads img.
func NewTextureFromImage(f gl.Functions, img image.Image, settings TextureSettings) (*Texture, error) {
	m := toNRGBA(img)
	w, h := m.Rect.Dx(), m.Rect.Dy()
	return NewTexture(f, m.Pix[:w*h*4], w, h, settings)
}

// NewTextureFromPath decodes the image file at path and uploads it.
func NewTextureFromPath(f gl.Functions, path string, settings TextureSettings) (*Texture, error) {
	img, err := DecodeImageFile(path)
	if err != nil {
		return nil, err
	}
	return NewTextureFromImage(f, img, settings)
}

// NewTextureFromAlpha uploads an 8-bit coverage mask as white pixels
// with the mask as alpha.
func NewTextureFromAlpha(f gl.Functions, alpha []byte, width, height int, settings TextureSettings) (*Texture, error) {
	if len(alpha) != width*height {
		return nil, fmt.Errorf("gl2d: %d bytes for a %dx%d alpha texture: %w", len(alpha), width, height, ErrPixelSize)
	}
	return NewTexture(f, expandAlpha(alpha), width, height, settings)
}

func expandAlpha(alpha []byte) []byte {
	pixels := make([]byte, len(alpha)*4)
	for i, a := range alpha {
		pixels[i*4+0] = 0xff
		pixels[i*4+1] = 0xff
		pixels[i*4+2] = 0xff
		pixels[i*4+3] = a
	}
	return pixels
}

// toNRGBA returns img as an NRGBA image with origin (0, 0) and rows
// packed without padding.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if m, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && m.Stride == b.Dx()*4 {
		return m
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
