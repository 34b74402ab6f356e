// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantises a normalised sample to signed 16-bit PCM.
//
// The sample is clamped to [-1, 1]; negative values scale by 32768 and
// non-negative values by 32767, then truncate toward zero. That keeps -1.0 at
// math.MinInt16 and 1.0 at math.MaxInt16 without overflow. NaN maps to 0.
// The product is taken in float64, where it is exact for every float32 input,
// so truncation never sees a value rounded up across an integer.
func Float32ToInt16(x float32) int16 {
	if math.IsNaN(float64(x)) {
		return 0
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := float64(x)
	if v < 0 {
		return int16(v * 32768)
	}
	return int16(v * 32767)
}

// Int16ToFloat32 is the inverse of Float32ToInt16: negative samples divide
// by 32768 and non-negative ones by 32767, so both extremes map back to
// exactly -1.0 and 1.0.
func Int16ToFloat32(s int16) float32 {
	if s < 0 {
		return float32(s) / 32768.0
	}
	return float32(s) / 32767.0
}
