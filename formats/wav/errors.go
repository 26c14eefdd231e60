// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/audpost/audio"
)

var (
	ErrNotWavFile  = fmt.Errorf("not a WAV file: %w", audio.ErrUnsupportedFormat)
	ErrNotPCM      = fmt.Errorf("compressed WAV: %w", audio.ErrUnsupportedFormat)
	ErrNoDataChunk = fmt.Errorf("missing data chunk: %w", audio.ErrUnsupportedFormat)
)
