// SPDX-License-Identifier: EPL-2.0

// Package audio is the decoded-stream boundary of audsig.
//
// Decoders in the formats subpackages turn files into a Source: a reader of
// interleaved float32 samples in [-1, 1]. The root package drains a Source
// into an immutable signal.Frames buffer, which is what the real-time
// signals play.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources that know their length from the container header also implement
// Lengther. The declared length is only used to size allocations; a stream
// that ends early or runs long is still read to its real end.
//
// # Draining
//
// ReadAll collects every sample a Source produces:
//
//	samples, err := audio.ReadAll(src)
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Format Registry
//
// The registry maps case-insensitive format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("sounds/laser.wav")
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other errors
// indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n] first
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
