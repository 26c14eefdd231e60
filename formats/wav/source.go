// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-audio/wav"
	"github.com/ik5/audpost/audio"
)

// waveFormatPCM is the fmt chunk tag of uncompressed integer PCM.
const waveFormatPCM = 1

// Source streams raw frames out of the data chunk of a PCM WAV file.
type Source struct {
	closer     io.Closer
	pcm        io.Reader
	sampleRate int
	width      int
	channels   int
	eof        bool
}

var _ audio.Source = (*Source)(nil)

func (s *Source) SampleRate() int  { return s.sampleRate }
func (s *Source) SampleWidth() int { return s.width }
func (s *Source) Channels() int    { return s.channels }

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}

	err := s.closer.Close()
	s.closer = nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadFrames returns up to n whole frames. The returned slice is owned by the caller.
func (s *Source) ReadFrames(n int) ([]byte, error) {
	if s.eof || n <= 0 {
		return nil, io.EOF
	}

	frameWidth := s.width * s.channels
	buf := make([]byte, n*frameWidth)

	got, err := io.ReadFull(s.pcm, buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.eof = true
	default:
		return nil, fmt.Errorf("%w", err)
	}

	// Drop a trailing partial frame (e.g. a RIFF pad byte).
	got -= got % frameWidth
	if got == 0 {
		s.eof = true
		return nil, io.EOF
	}

	return buf[:got], nil
}

// NewSource parses the WAV header of r and positions it at the first frame.
func NewSource(r io.ReadSeeker) (*Source, error) {
	dec := wav.NewDecoder(r)

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != waveFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}

	width := int(dec.BitDepth) / 8
	if int(dec.BitDepth)%8 != 0 || !audio.ValidSampleWidth(width) {
		return nil, fmt.Errorf("%w: %d bits per sample", audio.ErrUnsupportedSampleSize, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDataChunk, err)
	}

	if dec.PCMChunk == nil {
		return nil, ErrNoDataChunk
	}

	return &Source{
		pcm:        io.LimitReader(dec.PCMChunk, int64(dec.PCMSize)),
		sampleRate: int(dec.SampleRate),
		width:      width,
		channels:   int(dec.NumChans),
	}, nil
}

// Open opens the WAV file at path. A missing file fails with
// audio.ErrFileNotFound, anything that is not PCM WAV with
// audio.ErrUnsupportedFormat.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, audio.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	src, err := NewSource(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	src.closer = f

	return src, nil
}
