// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color converts colors between the sRGB and the linear
// color spaces.
package f32color

import (
	"math"
)

// LinearFromSRGBArray converts the color channels of a non-premultiplied
// sRGB color to linear. Alpha is left unchanged.
func LinearFromSRGBArray(c [4]float32) [4]float32 {
	return [4]float32{SRGBToLinear(c[0]), SRGBToLinear(c[1]), SRGBToLinear(c[2]), c[3]}
}

// SRGBToLinear transforms color value from sRGB to linear.
func SRGBToLinear(c float32) float32 {
	// Formula from EXT_sRGB.
	v := float64(c)
	if v <= 0.04045 {
		return float32(v / 12.92)
	}
	return float32(math.Pow((v+0.055)/1.055, 2.4))
}

// LinearToSRGB transforms color value from linear to sRGB.
func LinearToSRGB(c float32) float32 {
	// Formula from EXT_sRGB.
	v := float64(c)
	switch {
	case v <= 0:
		return 0
	case v < 0.0031308:
		return float32(12.92 * v)
	case v < 1:
		return float32(1.055*math.Pow(v, 1/2.4) - 0.055)
	default:
		return 1
	}
}
