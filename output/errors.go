// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	// ErrDevice wraps failures to open the audio device.
	ErrDevice = errors.New("opening audio device")
	// ErrInvalidRate is returned for non-positive device rates.
	ErrInvalidRate = errors.New("device rate must be positive")
)
