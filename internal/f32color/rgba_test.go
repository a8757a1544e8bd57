// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"testing"
)

func TestChannelRoundtrip(t *testing.T) {
	for i := 0; i <= 0xff; i++ {
		want := uint8(i)
		got := uint8(LinearToSRGB(SRGBToLinear(float32(i)/0xff))*0xff + .5)
		if got != want {
			t.Errorf("got %d expected %d", got, want)
		}
	}
}

func TestArrayRoundtrip(t *testing.T) {
	for _, c := range [][4]float32{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 0.5},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	} {
		if lin := LinearFromSRGBArray(c); lin != c {
			t.Errorf("%v: channel extremes changed under conversion: %v", c, lin)
		}
	}
	mid := LinearFromSRGBArray([4]float32{0.5, 0.5, 0.5, 0.25})
	if mid[0] < 0.21 || mid[0] > 0.22 || mid[3] != 0.25 {
		t.Errorf("sRGB 0.5 maps to %v, expected ~0.214 with alpha kept", mid)
	}
	if d := LinearToSRGB(mid[0]) - 0.5; d > 1e-4 || d < -1e-4 {
		t.Errorf("got %v expected 0.5", LinearToSRGB(mid[0]))
	}
}

var sink [4]float32

func BenchmarkLinearFromSRGBArray(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := float32(i&0xff) / 0xff
		sink = LinearFromSRGBArray([4]float32{v, v, v, 1})
	}
}
