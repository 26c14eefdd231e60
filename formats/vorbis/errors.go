// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile indicates the stream has no valid Vorbis headers.
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")
