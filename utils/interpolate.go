// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate returns the value at fraction alpha between y1 and y2.
// alpha must be in [0, 1).
func LinearInterpolate(y1, y2, alpha float32) float32 {
	return y1 + (y2-y1)*alpha
}
