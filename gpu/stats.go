// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"strings"
)

// FlushReason tells why a batch was drawn.
type FlushReason uint8

const (
	// FlushState is a flush before a different draw state is bound.
	FlushState FlushReason = iota
	// FlushProgram is a flush before switching between colored and
	// textured drawing.
	FlushProgram
	// FlushTexture is a flush before a different texture or texture
	// color is used.
	FlushTexture
	// FlushCapacity is a flush of a full batch.
	FlushCapacity
	// FlushClear is a flush before the framebuffer is cleared.
	FlushClear
	// FlushEndFrame is the flush of the pending batch at the end of a
	// frame.
	FlushEndFrame

	flushReasonCount
)

// Stats are the counts of the current or last frame.
type Stats struct {
	// DrawCalls is the number of glDrawArrays calls.
	DrawCalls int
	// Vertices is the number of vertices drawn.
	Vertices int
	// StateChanges is the number of draw state bindings.
	StateChanges int
	Flushes      [flushReasonCount]int
}

func (s *Stats) flushed(reason FlushReason, vertices int) {
	s.DrawCalls++
	s.Vertices += vertices
	s.Flushes[reason]++
}

func (r FlushReason) String() string {
	switch r {
	case FlushState:
		return "state"
	case FlushProgram:
		return "program"
	case FlushTexture:
		return "texture"
	case FlushCapacity:
		return "capacity"
	case FlushClear:
		return "clear"
	case FlushEndFrame:
		return "end-frame"
	default:
		return fmt.Sprintf("FlushReason(%d)", uint8(r))
	}
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d draws, %d vertices, %d state changes", s.DrawCalls, s.Vertices, s.StateChanges)
	for r, n := range s.Flushes {
		if n > 0 {
			fmt.Fprintf(&b, ", %s=%d", FlushReason(r), n)
		}
	}
	return b.String()
}
