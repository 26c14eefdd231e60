// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// MockSource is an in-memory PCM source for tests.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	width      int
	channels   int
	data       []byte
	pos        int
	closed     bool
}

// NewMockSource creates a source that serves raw from memory.
func NewMockSource(sampleRate, width, channels int, raw []byte) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		width:      width,
		channels:   channels,
		data:       raw,
	}
}

// NewInt16Source creates a 16-bit source from interleaved samples.
func NewInt16Source(sampleRate, channels int, samples []int16) *MockSource {
	return NewMockSource(sampleRate, 2, channels, Int16Bytes(samples))
}

func (m *MockSource) SampleRate() int  { return m.sampleRate }
func (m *MockSource) SampleWidth() int { return m.width }
func (m *MockSource) Channels() int    { return m.channels }
func (m *MockSource) Closed() bool     { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) ReadFrames(n int) ([]byte, error) {
	frameWidth := m.width * m.channels
	if m.pos >= len(m.data) || n <= 0 {
		return nil, io.EOF
	}

	end := min(m.pos+n*frameWidth, len(m.data))
	end -= (end - m.pos) % frameWidth
	if end == m.pos {
		return nil, io.EOF
	}

	out := make([]byte, end-m.pos)
	copy(out, m.data[m.pos:end])
	m.pos = end

	return out, nil
}

// MockSink collects frames in memory.
// It implements the audio.Sink interface.
type MockSink struct {
	sampleRate int
	width      int
	channels   int
	Data       []byte
	closes     int
	discarded  bool
}

func NewMockSink(sampleRate, width, channels int) *MockSink {
	return &MockSink{sampleRate: sampleRate, width: width, channels: channels}
}

func (m *MockSink) SampleRate() int  { return m.sampleRate }
func (m *MockSink) SampleWidth() int { return m.width }
func (m *MockSink) Channels() int    { return m.channels }
func (m *MockSink) Frames() int      { return len(m.Data) / (m.width * m.channels) }
func (m *MockSink) Closes() int      { return m.closes }
func (m *MockSink) Discarded() bool  { return m.discarded }

func (m *MockSink) WriteFrames(raw []byte) error {
	m.Data = append(m.Data, raw...)
	return nil
}

func (m *MockSink) Close() error {
	m.closes++
	return nil
}

func (m *MockSink) Discard() error {
	m.discarded = true
	m.closes++
	return nil
}

// Int16Bytes encodes samples as little-endian bytes.
func Int16Bytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	return buf
}

// BytesInt16 decodes little-endian bytes into samples.
func BytesInt16(raw []byte) []int16 {
	out := make([]int16, len(raw)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	return out
}

// Noise returns n deterministic pseudo-random 16-bit samples.
func Noise(n int, seed int64) []int16 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(rng.Intn(40000) - 20000)
	}
	return out
}

// Sine returns n samples of a sine wave at frequency Hz with the given amplitude.
func Sine(n, sampleRate int, frequency float64, amplitude int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	}
	return out
}

// Delay prepends k zero samples to samples.
func Delay(samples []int16, k int) []int16 {
	out := make([]int16, k, k+len(samples))
	return append(out, samples...)
}

// WAVBytes builds a canonical 44-byte header PCM WAV around raw.
func WAVBytes(sampleRate, width, channels int, raw []byte) []byte {
	blockAlign := width * channels
	header := make([]byte, 44, 44+len(raw))

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(raw)))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(width*8))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(raw)))

	return append(header, raw...)
}

// WriteFile writes data into dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
	return path
}

// WriteWAV16 writes a 16-bit PCM WAV file and returns its path.
func WriteWAV16(t testing.TB, dir, name string, sampleRate, channels int, samples []int16) string {
	t.Helper()

	return WriteFile(t, dir, name, WAVBytes(sampleRate, 2, channels, Int16Bytes(samples)))
}
