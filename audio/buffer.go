// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// SampleBuffer holds planar float32 audio: one slice per channel, every
// channel the same length. Sample rate and channel count are fixed when the
// buffer is built and the buffer is never mutated afterwards, so it can be
// shared between goroutines.
type SampleBuffer struct {
	sampleRate int
	frames     int
	channels   [][]float32
}

// NewSampleBuffer copies channels into a new buffer.
//
// It fails with ErrInvalidInput when no channel is given, when sampleRate is
// not positive, or when the channels differ in length.
func NewSampleBuffer(sampleRate int, channels ...[]float32) (*SampleBuffer, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: at least one channel is required", ErrInvalidInput)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidInput, sampleRate)
	}

	frames := len(channels[0])
	for i, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrInvalidInput, i+1, len(ch), frames)
		}
	}

	b := &SampleBuffer{
		sampleRate: sampleRate,
		frames:     frames,
		channels:   make([][]float32, len(channels)),
	}
	for i, ch := range channels {
		b.channels[i] = append(make([]float32, 0, frames), ch...)
	}

	return b, nil
}

// NewSilentBuffer returns a zero-filled buffer.
func NewSilentBuffer(channels, sampleRate, frames int) (*SampleBuffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: at least one channel is required", ErrInvalidInput)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidInput, sampleRate)
	}
	if frames < 0 {
		return nil, fmt.Errorf("%w: negative frame count %d", ErrInvalidInput, frames)
	}

	b := &SampleBuffer{
		sampleRate: sampleRate,
		frames:     frames,
		channels:   make([][]float32, channels),
	}
	for i := range b.channels {
		b.channels[i] = make([]float32, frames)
	}

	return b, nil
}

// FromInterleaved splits interleaved samples into a planar buffer.
// len(samples) must be a whole number of frames.
func FromInterleaved(sampleRate, channels int, samples []float32) (*SampleBuffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: at least one channel is required", ErrInvalidInput)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a multiple of %d channels",
			ErrInvalidInput, len(samples), channels)
	}

	b, err := NewSilentBuffer(channels, sampleRate, len(samples)/channels)
	if err != nil {
		return nil, err
	}

	for f := range b.frames {
		base := f * channels
		for c := range channels {
			b.channels[c][f] = samples[base+c]
		}
	}

	return b, nil
}

// SampleRate is the number of frames per second.
func (b *SampleBuffer) SampleRate() int { return b.sampleRate }

// NumChannels is the number of planar channels.
func (b *SampleBuffer) NumChannels() int { return len(b.channels) }

// Frames is the number of samples per channel.
func (b *SampleBuffer) Frames() int { return b.frames }

// Sample returns the sample of channel c at frame f.
func (b *SampleBuffer) Sample(c, f int) float32 {
	return b.channels[c][f]
}

// Channel returns a copy of channel c.
func (b *SampleBuffer) Channel(c int) []float32 {
	return append(make([]float32, 0, b.frames), b.channels[c]...)
}

// Duration is Frames at SampleRate, truncated to the nanosecond.
func (b *SampleBuffer) Duration() time.Duration {
	return time.Duration(b.frames) * time.Second / time.Duration(b.sampleRate)
}

// Interleaved returns all samples frame by frame, channel by channel.
func (b *SampleBuffer) Interleaved() []float32 {
	nch := len(b.channels)
	out := make([]float32, b.frames*nch)

	for c, ch := range b.channels {
		for f, s := range ch {
			out[f*nch+c] = s
		}
	}

	return out
}

// Source streams the buffer as an interleaved Source.
func (b *SampleBuffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *SampleBuffer
	pos int // next frame
}

func (s *bufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *bufferSource) Channels() int   { return len(s.buf.channels) }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	nch := len(s.buf.channels)
	if len(dst)%nch != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= s.buf.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/nch, s.buf.frames-s.pos)
	for f := range frames {
		for c, ch := range s.buf.channels {
			dst[f*nch+c] = ch[s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.buf.frames {
		return frames * nch, io.EOF
	}
	return frames * nch, nil
}

// Collect drains src into a SampleBuffer. src is not closed.
func Collect(src Source) (*SampleBuffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: source reports %d channels", ErrInvalidInput, channels)
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels
	if size == 0 {
		size = channels
	}

	var interleaved []float32
	buf := make([]float32, size)
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// Some decoders signal the end with (0, nil) once drained.
			break
		}
	}

	// A decoder that stops mid-frame leaves a dangling partial frame; drop it.
	interleaved = interleaved[:len(interleaved)-len(interleaved)%channels]

	return FromInterleaved(src.SampleRate(), channels, interleaved)
}
