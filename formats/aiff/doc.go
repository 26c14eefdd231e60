// SPDX-License-Identifier: EPL-2.0

// Package aiff reads AIFF (Audio Interchange File Format) header metadata.
//
// This package uses github.com/go-audio/aiff to parse the COMM chunk. AIFF
// input is recognized and described, but not processed: only PCM WAV feeds
// the cancellation and alignment pipelines.
//
//	f, _ := os.Open("audio.aif")
//	info, err := aiff.Prober{}.Probe(f)
//	if err != nil {
//	    // Handle error
//	}
package aiff
