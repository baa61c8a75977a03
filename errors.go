// SPDX-License-Identifier: EPL-2.0

package audsig

import "errors"

var (
	// ErrUnsupportedFormat is returned when no decoder matches a file.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrEmptySource is returned when a decoded stream holds no whole frame.
	ErrEmptySource = errors.New("audio source produced no frames")
	// ErrInvalidRate is returned for non-positive sample rates.
	ErrInvalidRate = errors.New("sample rate must be positive")
)
