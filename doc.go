// SPDX-License-Identifier: EPL-2.0

// Package audpost provides offline post-production for pairs of WAV
// recordings: noise cancellation against a reference recording and time
// alignment by cross-correlation.
//
// # Noise Cancellation
//
// A main recording (voice plus room noise) and an auxiliary recording (the
// room noise alone) are streamed chunk by chunk. Every auxiliary chunk is
// inverted bitwise and mixed with the main chunk:
//
//	out, err := audpost.CancelNoise("main.wav", "aux.wav", "clean.wav")
//
// The blend is set by a ratio in [0, 2]; see the cancellation package.
//
// # Synchronization
//
// Two recordings of the same event made by different devices rarely start
// at the same instant. FrameLag and SecondsLag measure the offset from the
// first frames of both files, and Align writes the earlier recording
// delayed by that offset:
//
//	lag, err := audpost.SecondsLag("camera.wav", "recorder.wav", 0)
//	out, err := audpost.Align("camera.wav", "recorder.wav", "aligned.wav", 0)
//
// # Supported Formats
//
// Processing works on uncompressed PCM WAV with 8, 16 or 32-bit samples.
// Inspect also reads the headers of:
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// # Errors
//
// All failures are returned as wrapped sentinel errors from the audio
// package, e.g. audio.ErrFileNotFound or audio.ErrUnsupportedFormat, and
// name the offending file. Nothing is logged by the library.
package audpost
