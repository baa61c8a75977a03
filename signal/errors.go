// SPDX-License-Identifier: EPL-2.0

package signal

// Panic messages for broken caller contracts. These are programming errors,
// not runtime conditions, so constructors panic instead of returning them.
const (
	errZeroRate    = "signal: sample rate must be positive"
	errNegativeLen = "signal: declared length must not be negative"
	errShortSeq    = "signal: generator returned fewer frames than declared"
	errLongSeq     = "signal: generator returned more frames than declared"
	errNilInner    = "signal: stop filter needs an inner signal"
	errNilFrames   = "signal: frames must not be nil"
)
