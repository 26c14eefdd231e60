// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audpost/formats/wav"
	"github.com/ik5/audpost/internal/audiotest"
)

// Example_reading demonstrates streaming raw frames out of a WAV file.
func Example_reading() {
	samples := []int16{100, 200, 300, 400, 500}
	wavData := audiotest.WAVBytes(16000, 2, 1, audiotest.Int16Bytes(samples))

	source, err := wav.NewSource(bytes.NewReader(wavData))
	if err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Sample width: %d bytes\n", source.SampleWidth())
	fmt.Printf("Channels: %d\n", source.Channels())

	raw, _ := source.ReadFrames(10)
	fmt.Printf("Read %d frames\n", len(raw)/2)
	// Output:
	// Sample rate: 16000 Hz
	// Sample width: 2 bytes
	// Channels: 1
	// Read 5 frames
}

// Example_writing demonstrates creating a WAV file with OpenSink.
func Example_writing() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "out.wav")
	sink, err := wav.OpenSink(path, 1, 2, 8000)
	if err != nil {
		fmt.Println(err)
		return
	}

	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	if err := sink.WriteFrames(audiotest.Int16Bytes(samples)); err != nil {
		fmt.Println(err)
		return
	}
	if err := sink.Close(); err != nil {
		fmt.Println(err)
		return
	}

	info, _ := os.Stat(path)
	fmt.Printf("Frames: %d\n", sink.Frames())
	fmt.Printf("Wrote %d bytes\n", info.Size())
	// Output:
	// Frames: 1000
	// Wrote 2044 bytes
}
