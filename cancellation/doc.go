// SPDX-License-Identifier: EPL-2.0

// Package cancellation removes background noise from a recording by mixing
// it with the inverted signal of a second, noise-only recording.
//
// The cancellation is static: the auxiliary chunk is bitwise inverted (one's
// complement, not negation) and blended with the main chunk by a fixed
// ratio. There is no feedback loop.
//
//	c, err := cancellation.New(cancellation.WithRatio(1.2))
//	if err != nil {
//	    // Handle error
//	}
//	out, err := c.Process(mainDesc, auxDesc, "clean.wav")
//
// Ratio ranges over [0, 2]. At 2 the output is the main signal, at 0 it is
// the inverted auxiliary signal, and at 1 both are weighted equally.
package cancellation
