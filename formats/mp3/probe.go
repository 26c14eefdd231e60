// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audpost/audio"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	decodedChannels = 2
	decodedWidth    = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	SampleRate() int
	Length() int64
}

// Prober reads MP3 stream metadata.
type Prober struct{}

func (Prober) Probe(r io.ReadSeeker) (audio.Info, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return infoFrom(dec), nil
}

func infoFrom(dec mp3Reader) audio.Info {
	info := audio.Info{
		Format:      "mp3",
		SampleRate:  dec.SampleRate(),
		Channels:    decodedChannels,
		SampleWidth: decodedWidth,
	}

	// Length is -1 when the stream is not seekable.
	if n := dec.Length(); n > 0 {
		info.Frames = int(n / (decodedChannels * decodedWidth))
	}

	return info
}
