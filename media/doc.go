// SPDX-License-Identifier: EPL-2.0

// Package media identifies media files by suffix and exposes their audio
// metadata.
//
// A Descriptor is created for an existing file and classifies it into a
// closed set of types:
//
//	d, err := media.OpenAudio("take1.wav")
//	if err != nil {
//	    // audio.ErrFileNotFound or audio.ErrUnsupportedMediaType
//	}
//	rate, err := d.SampleRate()
//
// Metadata is loaded once, on first access, through an audio.Registry of
// probers. Video types are recognized so that they can be rejected with a
// clear error, but nothing in this module decodes them.
package media
