// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audpost/audio"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []float64
		want  []float64
	}{
		{
			name:  "positive peak",
			input: []float64{1, 2, 4},
			want:  []float64{0.25, 0.5, 1},
		},
		{
			name:  "negative peak",
			input: []float64{-8, 2, 4},
			want:  []float64{-1, 0.25, 0.5},
		},
		{
			name:  "already normalized",
			input: []float64{-1, 0, 1},
			want:  []float64{-1, 0, 1},
		},
		{
			name:  "single sample",
			input: []float64{-32768},
			want:  []float64{-1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalize_Range(t *testing.T) {
	t.Parallel()

	input := []float64{3, -7, 12, 0, -12.5, 6}
	got, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	var peak float64
	for _, v := range got {
		if v < -1 || v > 1 {
			t.Errorf("value %v outside [-1, 1]", v)
		}
		peak = math.Max(peak, math.Abs(v))
	}
	if peak != 1 {
		t.Errorf("peak = %v, want 1", peak)
	}
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	input := []float64{2, -4}
	if _, err := Normalize(input); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if input[0] != 2 || input[1] != -4 {
		t.Errorf("input modified: %v", input)
	}
}

func TestNormalize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []float64
		wantErr error
	}{
		{name: "nil", input: nil, wantErr: audio.ErrZeroLengthSignal},
		{name: "empty", input: []float64{}, wantErr: audio.ErrZeroLengthSignal},
		{name: "silent", input: []float64{0, 0, 0}, wantErr: audio.ErrSilentSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Normalize(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Normalize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
