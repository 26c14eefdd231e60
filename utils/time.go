// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FramesToSeconds converts a frame count at rate frames per second.
func FramesToSeconds(frames, rate int) float64 {
	return float64(frames) / float64(rate)
}

// SecondsToFrames converts a duration to whole frames, rounding down to the
// nearest lower frame count (so -0.15 s at 10 Hz is -2 frames).
func SecondsToFrames(seconds float64, rate int) int {
	return int(math.Floor(seconds * float64(rate)))
}
