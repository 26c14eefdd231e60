// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audpost/audio"
)

// Sink writes raw frames into a PCM WAV container. The header is fixed at
// creation and its sizes are patched on Close.
type Sink struct {
	closer     io.Closer
	path       string
	enc        *wav.Encoder
	sampleRate int
	width      int
	channels   int

	frames  int
	pending []byte // partial frame carried over to the next write
	intBuf  *goaudio.IntBuffer
	closed  bool
}

var _ audio.Sink = (*Sink)(nil)

func (s *Sink) SampleRate() int  { return s.sampleRate }
func (s *Sink) SampleWidth() int { return s.width }
func (s *Sink) Channels() int    { return s.channels }
func (s *Sink) Frames() int      { return s.frames }

// Path of the output file, empty when the sink is not file backed.
func (s *Sink) Path() string { return s.path }

// NewSink prepares a WAV encoder over w.
func NewSink(w io.WriteSeeker, channels, width, sampleRate int) (*Sink, error) {
	if !audio.ValidSampleWidth(width) {
		return nil, fmt.Errorf("%w: %d bytes per sample", audio.ErrUnsupportedSampleSize, width)
	}
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}
	if sampleRate < 1 {
		return nil, fmt.Errorf("invalid frame rate %d", sampleRate)
	}

	return &Sink{
		enc:        wav.NewEncoder(w, sampleRate, width*8, channels, waveFormatPCM),
		sampleRate: sampleRate,
		width:      width,
		channels:   channels,
		intBuf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: width * 8,
		},
	}, nil
}

// OpenSink creates (or truncates) the file at path and configures it for
// channels × width-byte samples at sampleRate frames per second.
func OpenSink(path string, channels, width, sampleRate int) (*Sink, error) {
	if !audio.ValidSampleWidth(width) {
		return nil, fmt.Errorf("%s: %w: %d bytes per sample", path, audio.ErrUnsupportedSampleSize, width)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s, err := NewSink(f, channels, width, sampleRate)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.closer = f
	s.path = path

	return s, nil
}

// WriteFrames appends raw little-endian PCM. Bytes that do not complete a
// frame are kept and prepended to the next write.
func (s *Sink) WriteFrames(raw []byte) error {
	if s.closed {
		return errors.New("write to closed sink")
	}

	frameWidth := s.width * s.channels
	if len(s.pending) > 0 {
		raw = append(s.pending, raw...)
		s.pending = nil
	}

	whole := len(raw) - len(raw)%frameWidth
	if whole < len(raw) {
		s.pending = append([]byte(nil), raw[whole:]...)
	}
	if whole == 0 {
		return nil
	}

	s.intBuf.Data = decodeInts(s.intBuf.Data[:0], raw[:whole], s.width)
	if err := s.enc.Write(s.intBuf); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.frames += whole / frameWidth

	return nil
}

// Close writes the final header sizes. An empty sink still produces a valid
// WAV file with zero frames.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.frames == 0 {
		// The encoder emits the header on first write only.
		s.intBuf.Data = s.intBuf.Data[:0]
		if err := s.enc.Write(s.intBuf); err != nil {
			errs = append(errs, err)
		}
	}

	if err := s.enc.Close(); err != nil {
		errs = append(errs, err)
	}

	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = append(errs, err)
		}
		s.closer = nil
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Discard abandons the output. File backed sinks remove their file.
func (s *Sink) Discard() error {
	s.closed = true

	var errs []error
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = append(errs, err)
		}
		s.closer = nil
	}

	if s.path != "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// decodeInts turns raw samples into the int representation the go-audio
// encoder writes back byte for byte.
func decodeInts(dst []int, raw []byte, width int) []int {
	n := len(raw) / width

	switch width {
	case 1:
		for i := range n {
			dst = append(dst, int(raw[i]))
		}
	case 2:
		for i := range n {
			dst = append(dst, int(int16(binary.LittleEndian.Uint16(raw[2*i:]))))
		}
	case 4:
		for i := range n {
			dst = append(dst, int(int32(binary.LittleEndian.Uint32(raw[4*i:]))))
		}
	}

	return dst
}
