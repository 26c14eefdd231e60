// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	"github.com/ik5/audpost/audio"
	"gonum.org/v1/gonum/floats"
)

// Normalize scales signal into [-1, 1] by its peak absolute value.
// The input is left untouched.
func Normalize(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, audio.ErrZeroLengthSignal
	}

	peak := math.Max(math.Abs(floats.Max(signal)), math.Abs(floats.Min(signal)))
	if peak == 0 {
		return nil, audio.ErrSilentSignal
	}

	out := make([]float64, len(signal))
	copy(out, signal)
	floats.Scale(1/peak, out)

	return out, nil
}
