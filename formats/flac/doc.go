// SPDX-License-Identifier: EPL-2.0

// Package flac decodes Free Lossless Audio Codec streams through
// github.com/mewkiz/flac.
//
// Blocks are decoded one at a time and drained across ReadSamples calls,
// so any destination size that holds at least one frame works. Samples of
// any bit depth up to 32 are normalized to [-1, 1). Frames reports the
// total sample count from STREAMINFO when the encoder recorded it.
package flac
