// SPDX-License-Identifier: EPL-2.0

package syncer

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// CrossCorrelate returns the full linear cross-correlation of x1 and x2,
//
//	r[m] = Σ x1[n]·x2[n+m],  m = -(len(x1)-1) … len(x2)-1,
//
// stored at index m+len(x1)-1. The result has len(x1)+len(x2)-1 values, and
// is nil if either input is empty.
func CrossCorrelate(x1, x2 []float64) []float64 {
	if len(x1) == 0 || len(x2) == 0 {
		return nil
	}

	size := len(x1) + len(x2) - 1
	n := nextPow2(size)

	fft := fourier.NewFFT(n)
	c1 := fft.Coefficients(nil, pad(x1, n))
	c2 := fft.Coefficients(nil, pad(x2, n))

	// conj(X1)·X2 is the transform of the circular correlation.
	for i := range c1 {
		c1[i] = complex(real(c1[i]), -imag(c1[i])) * c2[i]
	}

	circular := fft.Sequence(nil, c1)
	floats.Scale(1/float64(n), circular)

	out := make([]float64, size)
	shift := len(x1) - 1
	for i := range out {
		m := i - shift
		if m < 0 {
			m += n
		}
		out[i] = circular[m]
	}

	return out
}

func pad(x []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, x)

	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
