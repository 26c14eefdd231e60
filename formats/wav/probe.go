// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/audpost/audio"
)

// Prober reads WAV header metadata.
type Prober struct{}

func (Prober) Probe(r io.ReadSeeker) (audio.Info, error) {
	dec := wav.NewDecoder(r)

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 {
		return audio.Info{}, ErrNotWavFile
	}

	info := audio.Info{
		Format:      "wav",
		SampleRate:  int(dec.SampleRate),
		Channels:    int(dec.NumChans),
		SampleWidth: int(dec.BitDepth) / 8,
	}

	if err := dec.FwdToPCM(); err == nil && info.SampleWidth > 0 {
		info.Frames = dec.PCMSize / (info.SampleWidth * info.Channels)
	}

	return info, nil
}
