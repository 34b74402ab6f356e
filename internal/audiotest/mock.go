// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds signal generators and fake sources shared by tests.
// It does not import the audio package so that package's own tests can use it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the sample of channel ch at frame index frame.
type Waveform func(frame, ch int) float32

// Silence is a Waveform of zeros.
func Silence(int, int) float32 { return 0 }

// Constant returns a Waveform that always yields v.
func Constant(v float32) Waveform {
	return func(int, int) float32 { return v }
}

// Sine returns a Waveform of a sine at freq Hz and amplitude amp, identical on
// every channel.
func Sine(sampleRate int, freq float64, amp float32) Waveform {
	return func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amp * float32(math.Sin(2*math.Pi*freq*t))
	}
}

// Ramp returns a Waveform that climbs linearly from -1 to 1 over frames.
func Ramp(frames int) Waveform {
	return func(frame, _ int) float32 {
		if frames <= 1 {
			return 0
		}
		return -1 + 2*float32(frame)/float32(frames-1)
	}
}

// Planar renders w into one slice per channel.
func Planar(channels, frames int, w Waveform) [][]float32 {
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
		for f := range frames {
			out[c][f] = w(f, c)
		}
	}
	return out
}

// MockSource is a streaming source that satisfies audio.Source.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    Waveform
	failAfter   int // frames before err is returned; <0 disables
	err         error
	closed      bool
	maxPerRead  int // 0 means no limit
}

func NewMockSource(sampleRate, channels, totalFrames int, w Waveform) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    w,
		failAfter:   -1,
	}
}

// NewFailingSource yields frames of silence and then returns err.
func NewFailingSource(sampleRate, channels, frames int, err error) *MockSource {
	m := NewMockSource(sampleRate, channels, frames+1, Silence)
	m.failAfter = frames
	m.err = err
	return m
}

// LimitRead caps the number of frames returned by a single ReadSamples call.
func (m *MockSource) LimitRead(frames int) *MockSource {
	m.maxPerRead = frames
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, m.err
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	if m.failAfter >= 0 {
		frames = min(frames, m.failAfter-m.generated)
	}
	if m.maxPerRead > 0 {
		frames = min(frames, m.maxPerRead)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
