// SPDX-License-Identifier: EPL-2.0

package syncer

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpost/audio"
	"github.com/ik5/audpost/formats/wav"
	"github.com/ik5/audpost/media"
	"github.com/ik5/audpost/utils"
	"gonum.org/v1/gonum/floats"
)

// DefaultChunkSize is the number of leading frames compared when no size
// is given.
const DefaultChunkSize = 10000

// Synchronizer estimates the offset between two recordings of the same
// event from the cross-correlation of their first ChunkSize frames.
// ChunkSize must cover the expected offset plus enough signal to
// correlate, and the offset should stay below half of it.
type Synchronizer struct {
	ChunkSize int
}

// New returns a Synchronizer. A zero chunkSize selects DefaultChunkSize.
func New(chunkSize int) (*Synchronizer, error) {
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	return &Synchronizer{ChunkSize: chunkSize}, nil
}

// FrameLag returns the offset of d2 relative to d1 in frames. A positive
// lag means d2 starts later than d1. Zero lag sits at index len(x1)-1 of the
// full cross-correlation of the two leading chunks x1 and x2, so the lag is
// the argmax minus that index.
func (s *Synchronizer) FrameLag(d1, d2 *media.Descriptor) (int, error) {
	src1, err := openWAV(d1)
	if err != nil {
		return 0, err
	}
	defer src1.Close()

	src2, err := openWAV(d2)
	if err != nil {
		return 0, err
	}
	defer src2.Close()

	lag, err := s.FrameLagSources(src1, src2)
	if err != nil {
		return 0, fmt.Errorf("%s, %s: %w", d1.Path(), d2.Path(), err)
	}

	return lag, nil
}

// FrameLagSources is FrameLag over already opened sources. Both are read
// once, for at most ChunkSize frames.
func (s *Synchronizer) FrameLagSources(a, b audio.Source) (int, error) {
	x1, err := leadingChunk(a, s.ChunkSize)
	if err != nil {
		return 0, err
	}
	x2, err := leadingChunk(b, s.ChunkSize)
	if err != nil {
		return 0, err
	}

	corr := CrossCorrelate(x1, x2)

	return floats.MaxIdx(corr) - (len(x1) - 1), nil
}

// SecondsLag is FrameLag expressed in seconds at the frame rate of d1.
func (s *Synchronizer) SecondsLag(d1, d2 *media.Descriptor) (float64, error) {
	lag, err := s.FrameLag(d1, d2)
	if err != nil {
		return 0, err
	}

	rate, err := d1.SampleRate()
	if err != nil {
		return 0, err
	}

	return utils.FramesToSeconds(lag, rate), nil
}

// SecondsLagSources is SecondsLag over already opened sources.
func (s *Synchronizer) SecondsLagSources(a, b audio.Source) (float64, error) {
	lag, err := s.FrameLagSources(a, b)
	if err != nil {
		return 0, err
	}

	return utils.FramesToSeconds(lag, a.SampleRate()), nil
}

// Process writes to outputPath the recording that starts earlier, delayed by
// the measured lag, so that it lines up with the other one. The output keeps
// the parameters of the copied recording.
func (s *Synchronizer) Process(d1, d2 *media.Descriptor, outputPath string) (*media.Descriptor, error) {
	if media.Classify(outputPath) != media.TypeWAV {
		return nil, fmt.Errorf("%s: output must be a .wav file: %w", outputPath, audio.ErrUnsupportedMediaType)
	}

	lag, err := s.FrameLag(d1, d2)
	if err != nil {
		return nil, err
	}

	ref := d1
	if lag < 0 {
		ref = d2
	}

	src, err := openWAV(ref)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sink, err := wav.OpenSink(outputPath, src.Channels(), src.SampleWidth(), src.SampleRate())
	if err != nil {
		return nil, err
	}

	if _, err := s.ProcessSources(src, lag, sink); err != nil {
		return nil, errors.Join(fmt.Errorf("%s: %w", ref.Path(), err), audio.CloseOrDiscard(sink))
	}

	if err := sink.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", outputPath, err)
	}

	return media.Open(outputPath)
}

// ProcessSources writes |lag| frames of silence followed by every frame of
// ref into sink and returns the number of frames written. Closing is left
// to the caller.
func (s *Synchronizer) ProcessSources(ref audio.Source, lag int, sink audio.Sink) (int, error) {
	if lag < 0 {
		lag = -lag
	}

	if lag > 0 {
		if err := sink.WriteFrames(audio.Silence(lag, sink.SampleWidth(), sink.Channels())); err != nil {
			return sink.Frames(), fmt.Errorf("write: %w", err)
		}
	}

	for {
		raw, err := ref.ReadFrames(s.ChunkSize)
		if errors.Is(err, io.EOF) {
			return sink.Frames(), nil
		}
		if err != nil {
			return sink.Frames(), fmt.Errorf("read: %w", err)
		}

		if err := sink.WriteFrames(raw); err != nil {
			return sink.Frames(), fmt.Errorf("write: %w", err)
		}
	}
}

// leadingChunk reads and normalizes the first frames of src.
func leadingChunk(src audio.Source, frames int) ([]float64, error) {
	chunk, err := audio.ReadChunk(src, frames)
	if err != nil {
		return nil, err
	}

	if len(chunk) == 0 {
		return nil, audio.ErrZeroLengthSignal
	}

	return utils.Normalize(chunk)
}

func openWAV(d *media.Descriptor) (*wav.Source, error) {
	if d.Type() != media.TypeWAV {
		return nil, fmt.Errorf("%s: %s input: %w", d.Path(), d.Type(), audio.ErrUnsupportedFormat)
	}

	return wav.Open(d.Path())
}
