// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"log/slog"
)

// Option configures a Renderer.
type Option func(cnf *Config)

// Config holds the renderer settings applied by the Options passed
// to New.
type Config struct {
	// GLSL forces a shading language tier. The zero value selects the
	// tier from the GL version.
	GLSL GLSL
	// Capacity is the number of vertices a batch holds before it is
	// flushed.
	Capacity int
	// SRGB enables GL_FRAMEBUFFER_SRGB at the start of every frame.
	SRGB   bool
	Logger *slog.Logger
}

const (
	// MaxVerticesPerChunk is the largest number of vertices a single
	// producer chunk is expected to carry.
	MaxVerticesPerChunk = 1023
	// DefaultChunks is the number of full chunks a batch holds.
	DefaultChunks = 100
	// DefaultCapacity is the default batch capacity in vertices.
	DefaultCapacity = DefaultChunks * MaxVerticesPerChunk
)

// WithGLSL forces the shading language tier instead of deriving it
// from the GL version.
func WithGLSL(v GLSL) Option {
	return func(cnf *Config) {
		cnf.GLSL = v
	}
}

// WithCapacity sets the batch capacity in vertices. It is rounded down
// to whole triangles, with a minimum of one triangle.
func WithCapacity(vertices int) Option {
	return func(cnf *Config) {
		vertices -= vertices % 3
		cnf.Capacity = max(vertices, 3)
	}
}

// WithSRGB controls whether frames are rendered with
// GL_FRAMEBUFFER_SRGB enabled. It is enabled by default.
func WithSRGB(enable bool) Option {
	return func(cnf *Config) {
		cnf.SRGB = enable
	}
}

// WithLogger sets the logger of the renderer, overriding the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(cnf *Config) {
		cnf.Logger = l
	}
}

func newConfig(opts []Option) Config {
	cnf := Config{
		Capacity: DefaultCapacity,
		SRGB:     true,
	}
	for _, o := range opts {
		o(&cnf)
	}
	if cnf.Logger == nil {
		cnf.Logger = Logger()
	}
	return cnf
}
