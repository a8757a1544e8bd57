// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the OpenGL device capability the 2D renderer is
// built on, together with the enums and object handles it uses.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ARRAY_BUFFER           = 0x8892
	BLEND                  = 0xbe2
	CLAMP_TO_BORDER        = 0x812d
	CLAMP_TO_EDGE          = 0x812f
	COLOR_BUFFER_BIT       = 0x4000
	COMPILE_STATUS         = 0x8b81
	CONSTANT_COLOR         = 0x8001
	CULL_FACE              = 0xb44
	DEPTH_BUFFER_BIT       = 0x100
	DST_ALPHA              = 0x304
	DST_COLOR              = 0x306
	DYNAMIC_DRAW           = 0x88e8
	EQUAL                  = 0x202
	EXTENSIONS             = 0x1f03
	FALSE                  = 0
	FLOAT                  = 0x1406
	FRAGMENT_SHADER        = 0x8b30
	FRAMEBUFFER_SRGB       = 0x8db9
	FUNC_ADD               = 0x8006
	FUNC_SUBTRACT          = 0x800a
	INCR                   = 0x1e02
	INFO_LOG_LENGTH        = 0x8b84
	INVALID_ENUM           = 0x500
	INVALID_OPERATION      = 0x502
	INVALID_VALUE          = 0x501
	KEEP                   = 0x1e00
	LINEAR                 = 0x2601
	LINEAR_MIPMAP_LINEAR   = 0x2703
	LINEAR_MIPMAP_NEAREST  = 0x2701
	LINK_STATUS            = 0x8b82
	MAX_TEXTURE_SIZE       = 0xd33
	MIRRORED_REPEAT        = 0x8370
	NEAREST                = 0x2600
	NEAREST_MIPMAP_LINEAR  = 0x2702
	NEAREST_MIPMAP_NEAREST = 0x2700
	NEVER                  = 0x200
	NO_ERROR               = 0x0
	NOTEQUAL               = 0x205
	ONE                    = 0x1
	ONE_MINUS_SRC_ALPHA    = 0x303
	OUT_OF_MEMORY          = 0x505
	REPEAT                 = 0x2901
	REPLACE                = 0x1e01
	RGBA                   = 0x1908
	RGBA8                  = 0x8058
	SCISSOR_TEST           = 0xc11
	SHORT                  = 0x1402
	SRC_ALPHA              = 0x302
	SRC_COLOR              = 0x300
	SRGB8_ALPHA8           = 0x8c43
	STENCIL_BUFFER_BIT     = 0x400
	STENCIL_TEST           = 0xb90
	TEXTURE_2D             = 0xde1
	TEXTURE_BORDER_COLOR   = 0x1004
	TEXTURE_MAG_FILTER     = 0x2800
	TEXTURE_MIN_FILTER     = 0x2801
	TEXTURE_WRAP_S         = 0x2802
	TEXTURE_WRAP_T         = 0x2803
	TEXTURE0               = 0x84c0
	TRIANGLES              = 0x4
	TRUE                   = 1
	UNSIGNED_BYTE          = 0x1401
	VERSION                = 0x1f02
	VERTEX_SHADER          = 0x8b31
	ZERO                   = 0x0
)
