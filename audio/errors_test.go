// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidChannels, "source must have at least one channel"},
		{ErrUnknownFormat, "no decoder registered for format"},
		{ErrNoProgress, "source returned no samples and no error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading %s: %w", "hit.flac", ErrUnknownFormat)
	if !errors.Is(wrapped, ErrUnknownFormat) {
		t.Error("errors.Is() failed for wrapped ErrUnknownFormat")
	}

	if errors.Is(wrapped, ErrInvalidChannels) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}
