// SPDX-License-Identifier: EPL-2.0

package cancellation

import (
	"fmt"

	"github.com/ik5/audpost/audio"
)

// CheckCompatibility compares the stream parameters of main and aux.
// Different frame rates or channel counts are fatal. Different sample widths only degrade the
// result and are returned as warnings.
func CheckCompatibility(main, aux audio.Source) (warnings []error, err error) {
	if main.SampleRate() != aux.SampleRate() {
		return nil, fmt.Errorf("%w: %d Hz and %d Hz",
			audio.ErrFramerateMismatch, main.SampleRate(), aux.SampleRate())
	}

	if main.Channels() != aux.Channels() {
		return nil, fmt.Errorf("%w: %d and %d channels",
			audio.ErrChannelMismatch, main.Channels(), aux.Channels())
	}

	if main.SampleWidth() != aux.SampleWidth() {
		warnings = append(warnings, fmt.Errorf("%w: %d and %d bytes, this can lead to loss of quality",
			audio.ErrSampleWidthMismatch, main.SampleWidth(), aux.SampleWidth()))
	}

	return warnings, nil
}
