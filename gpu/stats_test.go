// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "testing"

func TestStatsString(t *testing.T) {
	var s Stats
	s.flushed(FlushCapacity, 6)
	s.flushed(FlushEndFrame, 1)
	s.StateChanges = 1
	if got, exp := s.String(), "2 draws, 7 vertices, 1 state changes, capacity=1, end-frame=1"; got != exp {
		t.Errorf("got %q expected %q", got, exp)
	}
}
