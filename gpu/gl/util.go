// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
	"strings"
)

// CompileError is returned when a shader stage fails to compile.
// Log is the driver's info log.
type CompileError struct {
	Stage string
	Log   string
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", e.Log)
}

// StageName returns the human readable name of a shader type.
func StageName(typ Enum) string {
	switch typ {
	case VERTEX_SHADER:
		return "vertex"
	case FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("shader(%#x)", uint(typ))
	}
}

// CreateShader compiles src into a new shader object of type typ.
func CreateShader(f Functions, typ Enum, src string) (Shader, error) {
	sh := f.CreateShader(typ)
	if !sh.Valid() {
		return Shader{}, errors.New("glCreateShader failed")
	}
	f.ShaderSource(sh, src)
	f.CompileShader(sh)
	if f.GetShaderi(sh, COMPILE_STATUS) == 0 {
		log := f.GetShaderInfoLog(sh)
		f.DeleteShader(sh)
		return Shader{}, &CompileError{Stage: StageName(typ), Log: trimLog(log)}
	}
	return sh, nil
}

// LinkProgram links prog and reports the link log on failure.
func LinkProgram(f Functions, prog Program) error {
	f.LinkProgram(prog)
	if f.GetProgrami(prog, LINK_STATUS) == 0 {
		return &LinkError{Log: trimLog(f.GetProgramInfoLog(prog))}
	}
	return nil
}

func trimLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

// ParseGLVersion parses a GL_VERSION string. The es result reports
// whether the version is an OpenGL ES or WebGL one.
func ParseGLVersion(glVer string) (ver [2]int, es bool, err error) {
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "WebGL %d.%d", &ver[0], &ver[1]); err == nil {
		// WebGL major version v corresponds to OpenGL ES version v + 1
		ver[0]++
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, false, nil
	}
	return ver, false, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}

// HasExtension reports whether ext is listed in the space separated
// GL_EXTENSIONS string exts.
func HasExtension(exts, ext string) bool {
	for _, e := range strings.Fields(exts) {
		if e == ext {
			return true
		}
	}
	return false
}
