// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat     = errors.New("unsupported format: only PCM WAV is supported")
	ErrFileNotFound          = errors.New("file not found")
	ErrUnsupportedMediaType  = errors.New("unsupported media type")
	ErrFramerateMismatch     = errors.New("input audio files must have the same framerate")
	ErrSampleWidthMismatch   = errors.New("input audio files have different sample width")
	ErrChannelMismatch       = errors.New("input audio files must have the same number of channels")
	ErrUnsupportedSampleSize = errors.New("unsupported sample size")
	ErrZeroLengthSignal      = errors.New("zero length signal")
	ErrSilentSignal          = errors.New("silent signal cannot be normalized")
)
