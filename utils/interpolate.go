// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples p[0..3] at t in [0, 1] between p[1] and p[2].
func CubicInterpolate(p [4]float32, t float32) float32 {
	a0 := -0.5*p[0] + 1.5*p[1] - 1.5*p[2] + 0.5*p[3]
	a1 := p[0] - 2.5*p[1] + 2*p[2] - 0.5*p[3]
	a2 := -0.5*p[0] + 0.5*p[2]

	return ((a0*t+a1)*t+a2)*t + p[1]
}
