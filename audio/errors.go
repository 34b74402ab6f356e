// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidInput reports a malformed sample buffer: no channels,
	// a non-positive sample rate or channels of different lengths.
	// Callers match it with errors.Is; the wrapped message carries the detail.
	ErrInvalidInput = errors.New("invalid input")

	ErrUnknownFormat = errors.New("unknown audio format")
)
