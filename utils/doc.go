// SPDX-License-Identifier: EPL-2.0

// Package utils holds the numeric helpers shared by the cancellation and
// synchronization pipelines: peak normalization and frame/time conversion.
package utils
