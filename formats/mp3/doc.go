// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads MP3 stream metadata.
//
// This package uses github.com/hajimehoshi/go-mp3 to parse MPEG-1/2 Layer III
// streams. The decoder always produces 16-bit stereo output, so the reported
// sample width and channel count describe the decoded form, not the encoded
// stream.
//
// MP3 input is described, never processed: cancellation and alignment only
// work on PCM WAV.
//
//	f, _ := os.Open("audio.mp3")
//	info, err := mp3.Prober{}.Probe(f)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.SampleRate, info.Frames)
package mp3
