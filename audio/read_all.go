// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads ReadAll tolerates.
const maxEmptyReads = 100

// maxPrealloc caps the allocation taken from a container's declared length.
const maxPrealloc = 1 << 26

// ReadAll drains src and returns every interleaved sample it produced.
//
// The declared length, when src implements Lengther, only sizes the initial
// allocation. A source that ends on io.EOF is not an error.
func ReadAll(src Source) ([]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	var out []float32
	if n := DeclaredFrames(src); n > 0 {
		out = make([]float32, 0, min(n*int64(channels), maxPrealloc))
	}

	buf := make([]float32, size)
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty > maxEmptyReads {
			return nil, ErrNoProgress
		}
	}

	// drop a trailing partial frame
	return out[:len(out)-len(out)%channels], nil
}
