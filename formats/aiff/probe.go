// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audpost/audio"
)

// header holds the COMM chunk fields the prober reports.
type header struct {
	channels   int
	bitDepth   int
	sampleRate int
	frames     int
}

// Prober reads AIFF header metadata.
type Prober struct{}

func (Prober) Probe(r io.ReadSeeker) (audio.Info, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return audio.Info{}, ErrNotAiffFile
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return audio.Info{}, fmt.Errorf("%w", err)
	}

	dec = aiff.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}

	return infoFrom(header{
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		sampleRate: dec.SampleRate,
		frames:     int(dec.NumSampleFrames),
	})
}

func infoFrom(h header) (audio.Info, error) {
	if h.channels < 1 || h.sampleRate < 1 {
		return audio.Info{}, fmt.Errorf("%w: %d channels at %d Hz",
			ErrUnsupportedAiffLayout, h.channels, h.sampleRate)
	}

	return audio.Info{
		Format:      "aiff",
		SampleRate:  h.sampleRate,
		Channels:    h.channels,
		SampleWidth: (h.bitDepth + 7) / 8,
		Frames:      h.frames,
	}, nil
}
