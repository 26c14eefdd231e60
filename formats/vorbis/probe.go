// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audpost/audio"
	"github.com/jfreymuth/oggvorbis"
)

// vorbisReader is an interface for oggvorbis.Reader to allow testing
type vorbisReader interface {
	SampleRate() int
	Channels() int
	Length() int64
}

// Prober reads Ogg Vorbis stream metadata.
type Prober struct{}

func (Prober) Probe(r io.ReadSeeker) (audio.Info, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return infoFrom(dec), nil
}

func infoFrom(dec vorbisReader) audio.Info {
	info := audio.Info{
		Format:     "ogg",
		SampleRate: dec.SampleRate(),
		Channels:   dec.Channels(),
	}

	// Vorbis decodes to float samples, there is no integer width to report.
	if n := dec.Length(); n > 0 {
		info.Frames = int(n)
	}

	return info
}
