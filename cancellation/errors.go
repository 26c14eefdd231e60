// SPDX-License-Identifier: EPL-2.0

package cancellation

import "errors"

var (
	ErrInvalidRatio     = errors.New("mix ratio must be within [0, 2]")
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
)
