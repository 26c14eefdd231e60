// SPDX-License-Identifier: EPL-2.0

package cancellation

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpost/audio"
	"github.com/ik5/audpost/formats/wav"
	"github.com/ik5/audpost/media"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRatio       = 1.0
	DefaultChunkSize   = 4096
	DefaultInvertWidth = 4
)

// Canceller mixes a main recording with the inverted copy of an auxiliary
// noise recording. Zero output parameters are inherited from the main
// source on every run, so one Canceller can process many pairs.
type Canceller struct {
	OutputRate  int
	Channels    int
	SampleWidth int

	Ratio       float64
	ChunkSize   int
	InvertWidth int

	// Strict runs CheckCompatibility before processing.
	Strict bool

	log logrus.FieldLogger
}

// Option configures a Canceller.
type Option func(*Canceller)

func WithRatio(ratio float64) Option {
	return func(c *Canceller) { c.Ratio = ratio }
}

func WithChunkSize(frames int) Option {
	return func(c *Canceller) { c.ChunkSize = frames }
}

// WithInvertWidth sets the word size in bytes used by Invert.
func WithInvertWidth(width int) Option {
	return func(c *Canceller) { c.InvertWidth = width }
}

// WithOutput overrides the sink parameters. Zero keeps the main source value.
func WithOutput(rate, channels, width int) Option {
	return func(c *Canceller) {
		c.OutputRate = rate
		c.Channels = channels
		c.SampleWidth = width
	}
}

// WithCompatibilityCheck makes Process reject sources with different frame
// rates and log a warning for different sample widths.
func WithCompatibilityCheck() Option {
	return func(c *Canceller) { c.Strict = true }
}

// WithLogger sets where compatibility warnings go. Nothing is logged by
// default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Canceller) { c.log = log }
}

// New returns a Canceller with the defaults applied before opts.
func New(opts ...Option) (*Canceller, error) {
	c := &Canceller{
		Ratio:       DefaultRatio,
		ChunkSize:   DefaultChunkSize,
		InvertWidth: DefaultInvertWidth,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Canceller) validate() error {
	if !validRatio(c.Ratio) {
		return fmt.Errorf("%w: %v", ErrInvalidRatio, c.Ratio)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkSize, c.ChunkSize)
	}
	if !audio.ValidSampleWidth(c.InvertWidth) {
		return fmt.Errorf("%w: inversion width %d", audio.ErrUnsupportedSampleSize, c.InvertWidth)
	}
	if c.SampleWidth != 0 && !audio.ValidSampleWidth(c.SampleWidth) {
		return fmt.Errorf("%w: output width %d", audio.ErrUnsupportedSampleSize, c.SampleWidth)
	}
	if c.OutputRate < 0 || c.Channels < 0 {
		return fmt.Errorf("invalid output parameters: %d Hz, %d channels", c.OutputRate, c.Channels)
	}

	return nil
}

// Process cancels the noise in main using aux and writes the result to
// outputPath. Both inputs must be PCM WAV. The output is truncated to the
// shorter input. When processing fails before any frame is written the
// output file is removed.
func (c *Canceller) Process(main, aux *media.Descriptor, outputPath string) (*media.Descriptor, error) {
	if media.Classify(outputPath) != media.TypeWAV {
		return nil, fmt.Errorf("%s: output must be a .wav file: %w", outputPath, audio.ErrUnsupportedMediaType)
	}

	for _, d := range []*media.Descriptor{main, aux} {
		if d.Type() != media.TypeWAV {
			return nil, fmt.Errorf("%s: %s input: %w", d.Path(), d.Type(), audio.ErrUnsupportedFormat)
		}
	}

	mainSrc, err := wav.Open(main.Path())
	if err != nil {
		return nil, err
	}
	defer mainSrc.Close()

	auxSrc, err := wav.Open(aux.Path())
	if err != nil {
		return nil, err
	}
	defer auxSrc.Close()

	if c.Strict {
		warnings, err := CheckCompatibility(mainSrc, auxSrc)
		if err != nil {
			return nil, fmt.Errorf("%s, %s: %w", main.Path(), aux.Path(), err)
		}
		for _, w := range warnings {
			c.log.WithFields(logrus.Fields{
				"function": "Canceller.Process",
				"main":     main.Path(),
				"aux":      aux.Path(),
			}).Warn(w.Error())
		}
	}

	rate, channels, width := c.outputParams(mainSrc)
	sink, err := wav.OpenSink(outputPath, channels, width, rate)
	if err != nil {
		return nil, err
	}

	if _, err := c.ProcessSources(mainSrc, auxSrc, sink); err != nil {
		return nil, errors.Join(err, audio.CloseOrDiscard(sink))
	}

	if err := sink.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", outputPath, err)
	}

	return media.Open(outputPath)
}

// ProcessSources streams matching chunks of main and aux into sink until
// either source is exhausted and returns the number of frames written.
// Both sources must have the same channel count. When their sample widths
// differ, aux is consumed in chunks of the same byte length as main.
// Closing the sources and the sink is left to the caller.
func (c *Canceller) ProcessSources(main, aux audio.Source, sink audio.Sink) (int, error) {
	if main.Channels() != aux.Channels() {
		return 0, fmt.Errorf("%w: %d and %d channels",
			audio.ErrChannelMismatch, main.Channels(), aux.Channels())
	}

	auxBytes := &byteChunker{src: aux}
	for {
		m, err := readChunk(main, c.ChunkSize)
		if err != nil {
			return sink.Frames(), err
		}
		if len(m) == 0 {
			return sink.Frames(), nil
		}

		a, err := auxBytes.next(len(m))
		if err != nil {
			return sink.Frames(), err
		}
		if len(a) == 0 {
			return sink.Frames(), nil
		}

		inverted, err := Invert(a, c.InvertWidth)
		if err != nil {
			return sink.Frames(), err
		}

		mixed, err := Mix(m, inverted, c.Ratio)
		if err != nil {
			return sink.Frames(), err
		}

		if err := sink.WriteFrames(mixed); err != nil {
			return sink.Frames(), fmt.Errorf("write: %w", err)
		}
	}
}

func (c *Canceller) outputParams(main audio.Source) (rate, channels, width int) {
	rate, channels, width = c.OutputRate, c.Channels, c.SampleWidth
	if rate == 0 {
		rate = main.SampleRate()
	}
	if channels == 0 {
		channels = main.Channels()
	}
	if width == 0 {
		width = main.SampleWidth()
	}

	return rate, channels, width
}

// readChunk maps the end of stream to an empty chunk.
func readChunk(src audio.Source, frames int) ([]byte, error) {
	raw, err := src.ReadFrames(frames)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return raw, nil
}

// byteChunker hands out a source in chunks of a requested byte length,
// keeping the bytes of a frame that straddles two chunks for the next call.
type byteChunker struct {
	src     audio.Source
	pending []byte
	eof     bool
}

// next returns up to n bytes, fewer only at the end of the stream.
func (b *byteChunker) next(n int) ([]byte, error) {
	frameWidth := audio.FrameWidth(b.src)
	if frameWidth < 1 {
		return nil, fmt.Errorf("%w: %d bytes per frame", audio.ErrUnsupportedSampleSize, frameWidth)
	}

	for len(b.pending) < n && !b.eof {
		frames := (n - len(b.pending) + frameWidth - 1) / frameWidth
		raw, err := readChunk(b.src, frames)
		if err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			b.eof = true
			break
		}
		b.pending = append(b.pending, raw...)
	}

	k := min(n, len(b.pending))
	out := make([]byte, k)
	copy(out, b.pending)
	b.pending = b.pending[k:]

	return out, nil
}
