// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level PCM primitives shared by the
// noise cancellation and synchronization pipelines.
//
// This package contains:
//   - Source interface for sequential raw PCM input
//   - Sink interface for append-only raw PCM output
//   - ReadChunk for turning raw frames into numeric values
//   - Prober interface and Registry for format metadata
//   - The error taxonomy used across the module
//
// # Source Interface
//
// A Source hands out whole frames of interleaved little-endian PCM:
//
//	type Source interface {
//	    SampleRate() int
//	    SampleWidth() int
//	    Channels() int
//	    ReadFrames(n int) ([]byte, error)
//	    Close() error
//	}
//
// ReadFrames returns nil, io.EOF once the stream is exhausted. A short read
// means the stream ends inside the requested chunk.
//
// # Sink Interface
//
// A Sink has its channels, sample width and frame rate fixed at creation.
// Close must be called exactly once to finalize the output; Discard removes
// the output when a pipeline aborts before writing any frame.
//
// # Reading Chunks
//
// ReadChunk views each frame through an integer type as wide as the frame
// itself (1, 2 or 4 bytes). Other frame widths fail with
// ErrUnsupportedSampleSize:
//
//	values, err := audio.ReadChunk(src, 10000)
//
// # Error Handling
//
// All errors are sentinels, wrapped with the failing file where relevant:
//
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // not a PCM WAV file
//	}
package audio
