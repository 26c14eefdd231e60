// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audpost/audio"
	"github.com/ik5/audpost/internal/audiotest"
)

func readBack(t *testing.T, path string) (*Source, []byte) {
	t.Helper()

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", path, err)
	}
	t.Cleanup(func() { _ = src.Close() })

	var all []byte
	for {
		raw, err := src.ReadFrames(1024)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadFrames() error = %v", err)
		}
		all = append(all, raw...)
	}

	return src, all
}

func TestOpenSink_RoundTrip16(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []int16{0, 100, -100, 32767, -32768, 12345, -6789, 1}

	sink, err := OpenSink(path, 2, 2, 16000)
	if err != nil {
		t.Fatalf("OpenSink() error = %v", err)
	}

	if err := sink.WriteFrames(audiotest.Int16Bytes(samples)); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if sink.Frames() != 4 {
		t.Errorf("Frames() = %d, want 4", sink.Frames())
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	src, raw := readBack(t, path)
	if src.SampleRate() != 16000 || src.Channels() != 2 || src.SampleWidth() != 2 {
		t.Errorf("header = %d/%d/%d, want 16000/2/2", src.SampleRate(), src.Channels(), src.SampleWidth())
	}

	got := audiotest.BytesInt16(raw)
	if len(got) != len(samples) {
		t.Fatalf("read back %d samples, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], samples[i])
		}
	}
}

func TestOpenSink_RoundTrip32(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out32.wav")
	raw := make([]byte, 12)
	binary.LittleEndian.PutUint32(raw[0:], 0x7FFFFFFF)
	binary.LittleEndian.PutUint32(raw[4:], 0x80000000)
	binary.LittleEndian.PutUint32(raw[8:], 0x00010203)

	sink, err := OpenSink(path, 1, 4, 48000)
	if err != nil {
		t.Fatalf("OpenSink() error = %v", err)
	}
	if err := sink.WriteFrames(raw); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, got := readBack(t, path)
	if string(got) != string(raw) {
		t.Errorf("read back % x, want % x", got, raw)
	}
}

func TestSink_CarriesPartialFrames(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "carry.wav")
	raw := audiotest.Int16Bytes([]int16{10, 20, 30, 40})

	sink, err := OpenSink(path, 2, 2, 8000)
	if err != nil {
		t.Fatalf("OpenSink() error = %v", err)
	}

	// 3 bytes, then the remaining 5: one whole stereo frame after the first
	// write would be impossible, two after the second.
	if err := sink.WriteFrames(raw[:3]); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if sink.Frames() != 0 {
		t.Errorf("Frames() = %d after partial write, want 0", sink.Frames())
	}
	if err := sink.WriteFrames(raw[3:]); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if sink.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", sink.Frames())
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, got := readBack(t, path)
	if string(got) != string(raw) {
		t.Errorf("read back % x, want % x", got, raw)
	}
}

func TestSink_EmptyIsValidWAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.wav")

	sink, err := OpenSink(path, 1, 2, 44100)
	if err != nil {
		t.Fatalf("OpenSink() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) < 44 {
		t.Fatalf("WAV file too small: %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("header markers = %q %q, want RIFF WAVE", data[0:4], data[8:12])
	}

	src, raw := readBack(t, path)
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if len(raw) != 0 {
		t.Errorf("read back %d bytes, want 0", len(raw))
	}
}

func TestSink_CloseTwice(t *testing.T) {
	t.Parallel()

	sink, err := OpenSink(filepath.Join(t.TempDir(), "twice.wav"), 1, 2, 8000)
	if err != nil {
		t.Fatalf("OpenSink() error = %v", err)
	}

	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
	if err := sink.WriteFrames([]byte{0, 0}); err == nil {
		t.Error("WriteFrames() after Close error = nil, want error")
	}
}

func TestSink_DiscardRemovesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "aborted.wav")

	sink, err := OpenSink(path, 1, 2, 8000)
	if err != nil {
		t.Fatalf("OpenSink() error = %v", err)
	}
	if err := sink.Discard(); err != nil {
		t.Fatalf("Discard() error = %v", err)
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stat() error = %v, want not exist", err)
	}
}

func TestOpenSink_Truncates(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteFile(t, t.TempDir(), "old.wav", make([]byte, 4096))

	sink, err := OpenSink(path, 1, 2, 8000)
	if err != nil {
		t.Fatalf("OpenSink() error = %v", err)
	}
	if err := sink.WriteFrames(audiotest.Int16Bytes([]int16{1})); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 46 {
		t.Errorf("file size = %d, want 46", info.Size())
	}
}

func TestOpenSink_InvalidParameters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		channels int
		width    int
		rate     int
		wantErr  error
	}{
		{"24-bit", 1, 3, 8000, audio.ErrUnsupportedSampleSize},
		{"64-bit", 1, 8, 8000, audio.ErrUnsupportedSampleSize},
		{"no channels", 0, 2, 8000, nil},
		{"no rate", 1, 2, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(dir, tt.name+".wav")
			_, err := OpenSink(path, tt.channels, tt.width, tt.rate)
			if err == nil {
				t.Fatal("OpenSink() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("OpenSink() error = %v, want %v", err, tt.wantErr)
			}
			if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
				t.Errorf("OpenSink() left %q behind", path)
			}
		})
	}
}
