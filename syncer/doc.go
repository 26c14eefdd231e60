// SPDX-License-Identifier: EPL-2.0

// Package syncer aligns two recordings of the same event in time.
//
// The offset is estimated from the first frames of each recording: both
// chunks are peak normalized, cross-correlated and the position of the
// correlation maximum gives the lag in frames. Only one chunk is examined,
// so the chunk size has to be larger than twice the expected offset.
//
// A positive lag means the second recording starts later. Process copies
// the recording that starts earlier behind |lag| frames of silence, which
// lines it up with the other one.
//
// A chunk with no signal cannot be normalized and fails with
// audio.ErrSilentSignal.
package syncer
