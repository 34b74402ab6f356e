// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample containers and processing primitives the
// rest of the module is built on.
//
// # SampleBuffer
//
// A SampleBuffer is planar float32 audio with a fixed sample rate and channel
// count. Every channel holds the same number of frames:
//
//	buf, err := audio.NewSampleBuffer(44100, left, right)
//	if errors.Is(err, audio.ErrInvalidInput) {
//	    // no channels, bad rate or channels of different lengths
//	}
//
// Buffers are immutable once built, so they are safe to hand to several
// goroutines at once.
//
// # Source Interface
//
// Decoders produce a streaming Source of interleaved samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Collect drains a Source into a SampleBuffer, and SampleBuffer.Source goes
// the other way.
//
// # Processing
//
// Resample changes the sample rate with cubic (Catmull-Rom) interpolation and
// Downmix averages all channels into mono:
//
//	buf, _ = audio.Resample(buf, 16000)
//	mono := audio.Downmix(buf)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.DecoderFor("speech.WAV")
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]. Values outside that range are
// clamped when they are quantised for output.
package audio
