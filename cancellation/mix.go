// SPDX-License-Identifier: EPL-2.0

package cancellation

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/audpost/audio"
)

// Ratios splits ratio into the weights of the main and the inverted
// auxiliary signal: r1 = ratio/2 and r2 = 1 - r1. Ratio 2 keeps only the
// main signal, ratio 0 only the inverted auxiliary one.
func Ratios(ratio float64) (r1, r2 float64, err error) {
	if !validRatio(ratio) {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}

	r1 = ratio / 2
	r2 = 1 - r1

	return r1, r2, nil
}

func validRatio(ratio float64) bool {
	return ratio >= 0 && ratio <= 2
}

// Invert returns the one's complement of data, viewed as little-endian
// words of width bytes. Trailing bytes that do not fill a word are
// complemented one by one. The input is left untouched.
func Invert(data []byte, width int) ([]byte, error) {
	if !audio.ValidSampleWidth(width) {
		return nil, fmt.Errorf("%w: inversion width %d", audio.ErrUnsupportedSampleSize, width)
	}

	out := make([]byte, len(data))
	whole := len(data) - len(data)%width

	switch width {
	case 2:
		for i := 0; i < whole; i += 2 {
			binary.LittleEndian.PutUint16(out[i:], ^binary.LittleEndian.Uint16(data[i:]))
		}
	case 4:
		for i := 0; i < whole; i += 4 {
			binary.LittleEndian.PutUint32(out[i:], ^binary.LittleEndian.Uint32(data[i:]))
		}
	default:
		whole = 0
	}

	for i := whole; i < len(data); i++ {
		out[i] = ^data[i]
	}

	return out, nil
}

// Mix blends main and aux as signed 16-bit little-endian samples:
// out = main*r1 + aux*r2. The result is truncated toward zero and wraps on
// overflow like a fixed-width integer store. Only the common prefix of both
// inputs is mixed. A trailing odd byte is blended as a signed 8-bit value.
func Mix(main, aux []byte, ratio float64) ([]byte, error) {
	r1, r2, err := Ratios(ratio)
	if err != nil {
		return nil, err
	}

	n := min(len(main), len(aux))
	out := make([]byte, n)
	whole := n - n%2

	for i := 0; i < whole; i += 2 {
		m := float64(int16(binary.LittleEndian.Uint16(main[i:])))
		a := float64(int16(binary.LittleEndian.Uint16(aux[i:])))
		binary.LittleEndian.PutUint16(out[i:], uint16(int16(int64(m*r1+a*r2))))
	}

	if whole < n {
		m := float64(int8(main[whole]))
		a := float64(int8(aux[whole]))
		out[whole] = byte(int8(int64(m*r1 + a*r2)))
	}

	return out, nil
}
