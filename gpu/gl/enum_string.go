// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

var enumNames = map[Enum]string{
	ARRAY_BUFFER:           "ARRAY_BUFFER",
	BLEND:                  "BLEND",
	CLAMP_TO_BORDER:        "CLAMP_TO_BORDER",
	CLAMP_TO_EDGE:          "CLAMP_TO_EDGE",
	COLOR_BUFFER_BIT:       "COLOR_BUFFER_BIT",
	COMPILE_STATUS:         "COMPILE_STATUS",
	CONSTANT_COLOR:         "CONSTANT_COLOR",
	CULL_FACE:              "CULL_FACE",
	DEPTH_BUFFER_BIT:       "DEPTH_BUFFER_BIT",
	DST_ALPHA:              "DST_ALPHA",
	DST_COLOR:              "DST_COLOR",
	DYNAMIC_DRAW:           "DYNAMIC_DRAW",
	EQUAL:                  "EQUAL",
	EXTENSIONS:             "EXTENSIONS",
	FLOAT:                  "FLOAT",
	FRAGMENT_SHADER:        "FRAGMENT_SHADER",
	FRAMEBUFFER_SRGB:       "FRAMEBUFFER_SRGB",
	FUNC_ADD:               "FUNC_ADD",
	FUNC_SUBTRACT:          "FUNC_SUBTRACT",
	INCR:                   "INCR",
	INFO_LOG_LENGTH:        "INFO_LOG_LENGTH",
	INVALID_ENUM:           "INVALID_ENUM",
	INVALID_OPERATION:      "INVALID_OPERATION",
	INVALID_VALUE:          "INVALID_VALUE",
	KEEP:                   "KEEP",
	LINEAR:                 "LINEAR",
	LINEAR_MIPMAP_LINEAR:   "LINEAR_MIPMAP_LINEAR",
	LINEAR_MIPMAP_NEAREST:  "LINEAR_MIPMAP_NEAREST",
	LINK_STATUS:            "LINK_STATUS",
	MAX_TEXTURE_SIZE:       "MAX_TEXTURE_SIZE",
	MIRRORED_REPEAT:        "MIRRORED_REPEAT",
	NEAREST:                "NEAREST",
	NEAREST_MIPMAP_LINEAR:  "NEAREST_MIPMAP_LINEAR",
	NEAREST_MIPMAP_NEAREST: "NEAREST_MIPMAP_NEAREST",
	NEVER:                  "NEVER",
	NOTEQUAL:               "NOTEQUAL",
	ONE:                    "ONE",
	ONE_MINUS_SRC_ALPHA:    "ONE_MINUS_SRC_ALPHA",
	OUT_OF_MEMORY:          "OUT_OF_MEMORY",
	REPEAT:                 "REPEAT",
	REPLACE:                "REPLACE",
	RGBA:                   "RGBA",
	RGBA8:                  "RGBA8",
	SCISSOR_TEST:           "SCISSOR_TEST",
	SHORT:                  "SHORT",
	SRC_ALPHA:              "SRC_ALPHA",
	SRC_COLOR:              "SRC_COLOR",
	SRGB8_ALPHA8:           "SRGB8_ALPHA8",
	STENCIL_BUFFER_BIT:     "STENCIL_BUFFER_BIT",
	STENCIL_TEST:           "STENCIL_TEST",
	TEXTURE_2D:             "TEXTURE_2D",
	TEXTURE_BORDER_COLOR:   "TEXTURE_BORDER_COLOR",
	TEXTURE_MAG_FILTER:     "TEXTURE_MAG_FILTER",
	TEXTURE_MIN_FILTER:     "TEXTURE_MIN_FILTER",
	TEXTURE_WRAP_S:         "TEXTURE_WRAP_S",
	TEXTURE_WRAP_T:         "TEXTURE_WRAP_T",
	TEXTURE0:               "TEXTURE0",
	TRIANGLES:              "TRIANGLES",
	UNSIGNED_BYTE:          "UNSIGNED_BYTE",
	VERSION:                "VERSION",
	VERTEX_SHADER:          "VERTEX_SHADER",
	ZERO:                   "ZERO",
}

func (e Enum) String() string {
	if n, ok := enumNames[e]; ok {
		return n
	}
	return fmt.Sprintf("Enum(%#x)", uint(e))
}
