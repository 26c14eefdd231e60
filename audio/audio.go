// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is a sequential reader of raw PCM frames.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// SampleWidth in bytes per channel sample (1, 2 or 4).
	SampleWidth() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadFrames returns up to n whole frames of interleaved little-endian PCM.
	// When the stream is finished it returns nil, io.EOF.
	ReadFrames(n int) ([]byte, error)

	// Close releases any resources.
	Close() error
}

// Sink is an append-only writer of raw PCM frames. Its format is fixed
// when the sink is created.
type Sink interface {
	SampleRate() int
	SampleWidth() int
	Channels() int
	// WriteFrames appends whole frames of interleaved little-endian PCM.
	WriteFrames(raw []byte) error
	// Frames reports how many frames were written so far.
	Frames() int
	// Close finalizes the output. Calling it more than once is a no-op.
	Close() error
	// Discard closes the sink and removes whatever it produced.
	Discard() error
}

// CloseOrDiscard finalizes a sink after a failed run. A sink that never
// received a frame is discarded, anything else is closed and kept as a
// truncated but valid output.
func CloseOrDiscard(sink Sink) error {
	if sink.Frames() == 0 {
		return sink.Discard()
	}

	return sink.Close()
}

// FrameWidth is the size in bytes of a single frame of src.
func FrameWidth(src interface {
	SampleWidth() int
	Channels() int
}) int {
	return src.SampleWidth() * src.Channels()
}

// Info is a metadata snapshot of an audio stream.
type Info struct {
	Format     string
	SampleRate int
	Channels   int
	// SampleWidth in bytes, 0 when the codec has no fixed integer width.
	SampleWidth int
	// Frames is the stream length in frames, 0 when unknown.
	Frames int
}

// Prober reads stream metadata without decoding the payload.
type Prober interface {
	Probe(r io.ReadSeeker) (Info, error)
}

// Registry for probers by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	probers map[string]Prober

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[format] = p
}

func (r *Registry) Get(format string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[format]
	return p, ok
}
