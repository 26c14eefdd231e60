// SPDX-License-Identifier: EPL-2.0

package media

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/ik5/audpost/audio"
	"github.com/ik5/audpost/formats/aiff"
	"github.com/ik5/audpost/formats/mp3"
	"github.com/ik5/audpost/formats/vorbis"
	"github.com/ik5/audpost/formats/wav"
)

var (
	defaultRegistry     *audio.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry with every audio prober
// this module ships.
func DefaultRegistry() *audio.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = audio.NewRegistry()
		defaultRegistry.Register(TypeWAV.String(), wav.Prober{})
		defaultRegistry.Register(TypeMP3.String(), mp3.Prober{})
		defaultRegistry.Register(TypeOGG.String(), vorbis.Prober{})
		defaultRegistry.Register(TypeAIFF.String(), aiff.Prober{})
	})

	return defaultRegistry
}

// Descriptor describes an existing media file. Metadata is read from the
// header on first use and cached for the lifetime of the descriptor; later
// changes to the file are not observed.
type Descriptor struct {
	path     string
	typ      Type
	registry *audio.Registry

	once sync.Once
	info audio.Info
	err  error
}

// Option configures a Descriptor.
type Option func(*Descriptor)

// WithRegistry replaces the prober registry used for metadata.
func WithRegistry(r *audio.Registry) Option {
	return func(d *Descriptor) {
		d.registry = r
	}
}

// Open describes the regular file at path. Missing files fail with
// audio.ErrFileNotFound, unknown suffixes with audio.ErrUnsupportedMediaType.
func Open(path string, opts ...Option) (*Descriptor, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, audio.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file: %w", path, audio.ErrFileNotFound)
	}

	typ := Classify(path)
	if typ == TypeUnsupported {
		return nil, fmt.Errorf("%s: %w", path, audio.ErrUnsupportedMediaType)
	}

	d := &Descriptor{
		path:     path,
		typ:      typ,
		registry: DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// OpenAudio is Open restricted to audio types.
func OpenAudio(path string, opts ...Option) (*Descriptor, error) {
	d, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}

	if d.Kind() != KindAudio {
		return nil, fmt.Errorf("%s: %s file: %w", path, d.Kind(), audio.ErrUnsupportedMediaType)
	}

	return d, nil
}

func (d *Descriptor) Path() string { return d.path }
func (d *Descriptor) Type() Type   { return d.typ }
func (d *Descriptor) Kind() Kind   { return d.typ.Kind() }

// Info returns the header metadata, probing the file on the first call only.
// A failed probe is cached as well.
func (d *Descriptor) Info() (audio.Info, error) {
	d.once.Do(func() {
		d.info, d.err = d.probe()
	})

	return d.info, d.err
}

func (d *Descriptor) SampleRate() (int, error) {
	info, err := d.Info()
	return info.SampleRate, err
}

func (d *Descriptor) SampleWidth() (int, error) {
	info, err := d.Info()
	return info.SampleWidth, err
}

func (d *Descriptor) Channels() (int, error) {
	info, err := d.Info()
	return info.Channels, err
}

func (d *Descriptor) probe() (audio.Info, error) {
	p, ok := d.registry.Get(d.typ.String())
	if !ok {
		return audio.Info{}, fmt.Errorf("%s: no prober for %s: %w", d.path, d.typ, audio.ErrUnsupportedMediaType)
	}

	f, err := os.Open(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return audio.Info{}, fmt.Errorf("%s: %w", d.path, audio.ErrFileNotFound)
		}
		return audio.Info{}, fmt.Errorf("%s: %w", d.path, err)
	}
	defer f.Close()

	info, err := p.Probe(f)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%s: %w", d.path, err)
	}

	return info, nil
}
