// SPDX-License-Identifier: EPL-2.0

package syncer

import "errors"

var ErrInvalidChunkSize = errors.New("chunk size must be positive")
