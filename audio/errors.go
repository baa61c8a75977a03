// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidChannels = errors.New("source must have at least one channel")
	ErrUnknownFormat   = errors.New("no decoder registered for format")
	ErrNoProgress      = errors.New("source returned no samples and no error")
)
