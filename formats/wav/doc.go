// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM WAV files as raw frames.
//
// It uses the github.com/go-audio library for RIFF parsing and encoding.
//
// # Supported Formats
//
//   - PCM integer samples of 1, 2 or 4 bytes (8, 16, 32 bit)
//   - Any channel count
//   - Any sample rate
//
// Compressed and floating point WAV variants fail with
// audio.ErrUnsupportedFormat.
//
// # Reading
//
//	source, err := wav.Open("main.wav")
//	if err != nil {
//	    // audio.ErrFileNotFound or audio.ErrUnsupportedFormat
//	}
//	defer source.Close()
//
//	raw, err := source.ReadFrames(4096)
//
// Frames are returned as interleaved little-endian bytes exactly as they are
// stored in the data chunk.
//
// # Writing
//
//	sink, err := wav.OpenSink("out.wav", channels, width, rate)
//	defer sink.Close()
//	err = sink.WriteFrames(raw)
//
// OpenSink truncates any existing file. The header fields are fixed when the
// sink is created; Close patches the chunk sizes. Discard removes the file,
// which pipelines use when they abort before writing a frame.
//
// # Metadata
//
// Prober implements audio.Prober and reports sample rate, width, channel
// count and length without reading the samples.
package wav
