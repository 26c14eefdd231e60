// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFramesToSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		frames int
		rate   int
		want   float64
	}{
		{name: "one second", frames: 44100, rate: 44100, want: 1.0},
		{name: "half second", frames: 22050, rate: 44100, want: 0.5},
		{name: "negative lag", frames: -8000, rate: 16000, want: -0.5},
		{name: "zero", frames: 0, rate: 48000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FramesToSeconds(tt.frames, tt.rate); got != tt.want {
				t.Errorf("FramesToSeconds(%d, %d) = %v, want %v", tt.frames, tt.rate, got, tt.want)
			}
		})
	}
}

func TestSecondsToFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds float64
		rate    int
		want    int
	}{
		{name: "one second", seconds: 1.0, rate: 44100, want: 44100},
		{name: "half second", seconds: 0.5, rate: 44100, want: 22050},
		{name: "truncates", seconds: 0.99999, rate: 10, want: 9},
		{name: "negative rounds down", seconds: -0.15, rate: 10, want: -2},
		{name: "negative whole", seconds: -0.5, rate: 10, want: -5},
		{name: "zero", seconds: 0, rate: 8000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SecondsToFrames(tt.seconds, tt.rate); got != tt.want {
				t.Errorf("SecondsToFrames(%v, %d) = %d, want %d", tt.seconds, tt.rate, got, tt.want)
			}
		})
	}
}

func TestSecondsFramesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 16000, 44100, 48000} {
		for _, frames := range []int{0, 1, rate / 3, rate, 10 * rate} {
			if got := SecondsToFrames(FramesToSeconds(frames, rate), rate); got != frames && got != frames-1 {
				t.Errorf("rate %d: round trip of %d frames = %d", rate, frames, got)
			}
		}
	}
}
