// SPDX-License-Identifier: Unlicense OR MIT

// Command gl2d opens a window and draws a few scenes with the gl2d
// renderer: solid and textured shapes, a scissored shape, nested
// stencil clipping and text.
//
// Image files given as arguments are decoded concurrently and drawn
// next to a generated checkerboard.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"

	"gioui.org/gl2d/gpu"
	"gioui.org/gl2d/gpu/gl/gogl"
	"gioui.org/gl2d/text"
)

var (
	width    = flag.Int("width", 800, "window width")
	height   = flag.Int("height", 600, "window height")
	glslFlag = flag.String("glsl", "auto", "shading language tier (auto, 120, 150)")
	capacity = flag.Int("capacity", gpu.DefaultCapacity, "batch capacity in vertices")
	verbose  = flag.Bool("v", false, "log renderer statistics")
)

func init() {
	// GL calls must come from the thread owning the context.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "gl2d: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	glsl, err := parseGLSL(*glslFlag)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gpu.SetLogger(logger)

	// Decode while the window is created.
	var decoded []*image.NRGBA
	var decode errgroup.Group
	decode.Go(func() error {
		var err error
		decoded, err = loadImages(flag.Args())
		return err
	})

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	win, err := glfw.CreateWindow(*width, *height, "gl2d", nil, nil)
	if err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	funcs, err := gogl.New()
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	r, err := gpu.New(funcs, gpu.WithGLSL(glsl), gpu.WithCapacity(*capacity))
	if err != nil {
		return err
	}
	defer r.Release()
	glyphs, err := text.NewCache(goregular.TTF, text.GLTextures(funcs))
	if err != nil {
		return err
	}
	defer glyphs.Release()

	if err := decode.Wait(); err != nil {
		return err
	}
	s := &scene{glyphs: glyphs}
	defer s.release()
	checker, err := gpu.NewTextureFromImage(funcs, checkerboard(64, 8), gpu.DefaultTextureSettings().WithFilter(gpu.FilterNearest).WithWrap(gpu.WrapRepeat))
	if err != nil {
		return err
	}
	s.checker = checker
	for _, img := range decoded {
		tex, err := gpu.NewTextureFromImage(funcs, img, gpu.TextureSettings{GenerateMipmap: true, Mipmap: gpu.FilterLinear})
		if err != nil {
			return err
		}
		s.images = append(s.images, tex)
	}

	var frame error
	for !win.ShouldClose() && frame == nil {
		w, h := win.GetFramebufferSize()
		vp := gpu.Viewport{Width: w, Height: h}
		r.Draw(vp, func(c gpu.Context, r *gpu.Renderer) {
			frame = s.draw(c, r, glfw.GetTime())
		})
		glyphs.Maintain()
		if *verbose {
			logger.Debug("gl2d: stats", "stats", r.Stats().String())
		}
		win.SwapBuffers()
		glfw.PollEvents()
	}
	return frame
}

func parseGLSL(s string) (gpu.GLSL, error) {
	switch s {
	case "", "auto":
		return gpu.GLSLAuto, nil
	case "120":
		return gpu.GLSL120, nil
	case "150":
		return gpu.GLSL150, nil
	default:
		return 0, fmt.Errorf("invalid -glsl %s", s)
	}
}

// loadImages decodes the image files concurrently. The result is in
// the order of paths.
func loadImages(paths []string) ([]*image.NRGBA, error) {
	imgs := make([]*image.NRGBA, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			img, err := gpu.DecodeImageFile(path)
			imgs[i] = img
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}

// checkerboard returns a size*size gray checkerboard with cells of
// cell pixels.
func checkerboard(size, cell int) *image.NRGBA {
	if cell <= 0 {
		panic("checkerboard: invalid cell size")
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(0x60)
			if (x/cell+y/cell)%2 == 0 {
				v = 0xd0
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 0xff
		}
	}
	return img
}
