// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ReadChunk reads up to frames frames from src and returns one value per
// frame. The raw bytes are viewed through an integer type as wide as a whole
// frame (width × channels), so a 16-bit stereo frame becomes a single int32.
// 8-bit frames are unsigned and get centered around zero.
func ReadChunk(src Source, frames int) ([]float64, error) {
	frameWidth := FrameWidth(src)
	if !ValidSampleWidth(frameWidth) {
		return nil, fmt.Errorf("%w: %d bytes per frame", ErrUnsupportedSampleSize, frameWidth)
	}

	raw, err := src.ReadFrames(frames)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w", err)
	}

	return DecodeFrames(raw, frameWidth)
}

// DecodeFrames interprets raw as little-endian integers of the given width.
// Trailing bytes that do not form a whole value are ignored.
func DecodeFrames(raw []byte, width int) ([]float64, error) {
	if !ValidSampleWidth(width) {
		return nil, fmt.Errorf("%w: %d bytes per frame", ErrUnsupportedSampleSize, width)
	}

	n := len(raw) / width
	out := make([]float64, n)

	switch width {
	case 1:
		for i := range n {
			out[i] = float64(int(raw[i]) - 128)
		}
	case 2:
		for i := range n {
			out[i] = float64(int16(binary.LittleEndian.Uint16(raw[2*i:])))
		}
	case 4:
		for i := range n {
			out[i] = float64(int32(binary.LittleEndian.Uint32(raw[4*i:])))
		}
	}

	return out, nil
}

// Silence returns frames frames of digital silence for the given sample
// width and channel count. Unsigned 8-bit silence is 0x80, wider samples are
// signed and silent at zero.
func Silence(frames, width, channels int) []byte {
	buf := make([]byte, frames*width*channels)
	if width == 1 {
		for i := range buf {
			buf[i] = 0x80
		}
	}

	return buf
}

// ValidSampleWidth reports whether width is a supported PCM sample width.
func ValidSampleWidth(width int) bool {
	return width == 1 || width == 2 || width == 4
}
