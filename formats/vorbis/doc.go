// SPDX-License-Identifier: EPL-2.0

// Package vorbis reads Ogg Vorbis stream metadata.
//
// This package uses github.com/jfreymuth/oggvorbis to parse the identification
// header and, when the input is seekable, the stream length. Vorbis decodes
// to floating point, so the reported sample width is zero.
//
//	f, _ := os.Open("audio.ogg")
//	info, err := vorbis.Prober{}.Probe(f)
//	if err != nil {
//	    // Handle error
//	}
package vorbis
