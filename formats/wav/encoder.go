// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audiostudio/audio"
	"github.com/ik5/audiostudio/utils"
)

// writeChunkFrames is how many frames Write converts per Write call.
const writeChunkFrames = 8192

// layout is the validated geometry of an output file.
type layout struct {
	channels   uint16
	sampleRate uint32
	dataSize   uint32
}

func layoutOf(buf *audio.SampleBuffer) (layout, error) {
	if buf == nil {
		return layout{}, fmt.Errorf("%w: nil sample buffer", audio.ErrInvalidInput)
	}
	return newLayout(buf.NumChannels(), buf.SampleRate(), buf.Frames())
}

func newLayout(channels, sampleRate, frames int) (layout, error) {
	switch {
	case channels <= 0:
		return layout{}, fmt.Errorf("%w: at least one channel is required", audio.ErrInvalidInput)
	case channels > math.MaxUint16:
		return layout{}, fmt.Errorf("%w: %d channels exceed the WAV limit", audio.ErrInvalidInput, channels)
	case sampleRate <= 0:
		return layout{}, fmt.Errorf("%w: sample rate must be positive, got %d", audio.ErrInvalidInput, sampleRate)
	case uint64(sampleRate)*uint64(channels)*bytesPerPCM > math.MaxUint32:
		return layout{}, fmt.Errorf("%w: byte rate of %d Hz x %d channels overflows", audio.ErrInvalidInput, sampleRate, channels)
	case frames < 0:
		return layout{}, fmt.Errorf("%w: negative frame count %d", audio.ErrInvalidInput, frames)
	}

	dataSize := uint64(frames) * uint64(channels) * bytesPerPCM
	if dataSize > math.MaxUint32-36 {
		return layout{}, fmt.Errorf("%w: %d bytes of PCM data do not fit a RIFF chunk", audio.ErrInvalidInput, dataSize)
	}

	return layout{
		channels:   uint16(channels),
		sampleRate: uint32(sampleRate),
		dataSize:   uint32(dataSize),
	}, nil
}

// Encode renders buf as a complete 16-bit PCM WAV file of exactly
// HeaderSize + frames*channels*2 bytes.
//
// Samples are clamped to [-1, 1] and quantised with utils.Float32ToInt16,
// then written interleaved: every channel of frame 0, then every channel of
// frame 1, and so on. An empty buffer yields a bare 44-byte header.
//
// Encode keeps no state and is safe for concurrent use.
func Encode(buf *audio.SampleBuffer) ([]byte, error) {
	l, err := layoutOf(buf)
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+int(l.dataSize))
	putHeader(out, l.channels, l.sampleRate, l.dataSize)
	putFrames(out[HeaderSize:], buf, 0, buf.Frames())

	return out, nil
}

// EncodeSamples is Encode for callers holding raw per-channel slices.
func EncodeSamples(sampleRate int, channels ...[]float32) ([]byte, error) {
	buf, err := audio.NewSampleBuffer(sampleRate, channels...)
	if err != nil {
		return nil, err
	}
	return Encode(buf)
}

// Write streams the same bytes as Encode to w without holding the whole
// file in memory.
func Write(w io.Writer, buf *audio.SampleBuffer) error {
	l, err := layoutOf(buf)
	if err != nil {
		return err
	}

	var header [HeaderSize]byte
	putHeader(header[:], l.channels, l.sampleRate, l.dataSize)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w", err)
	}

	frames := buf.Frames()
	if frames == 0 {
		return nil
	}

	frameSize := int(l.channels) * bytesPerPCM
	chunk := make([]byte, min(frames, writeChunkFrames)*frameSize)

	for start := 0; start < frames; start += writeChunkFrames {
		end := min(start+writeChunkFrames, frames)
		block := chunk[:(end-start)*frameSize]

		putFrames(block, buf, start, end)
		if _, err := w.Write(block); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// putFrames writes frames [from, to) of buf, interleaved, into dst.
func putFrames(dst []byte, buf *audio.SampleBuffer, from, to int) {
	channels := buf.NumChannels()
	off := 0

	for f := from; f < to; f++ {
		for c := range channels {
			s := utils.Float32ToInt16(buf.Sample(c, f))
			binary.LittleEndian.PutUint16(dst[off:off+2], uint16(s))
			off += 2
		}
	}
}

// WriteWAV16 writes already quantised mono 16-bit PCM at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	l, err := newLayout(1, sampleRate, len(samples))
	if err != nil {
		return err
	}

	var header [HeaderSize]byte
	putHeader(header[:], l.channels, l.sampleRate, l.dataSize)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w", err)
	}
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), writeChunkFrames)*2)
	for i := 0; i < len(samples); i += writeChunkFrames {
		chunk := samples[i:min(i+writeChunkFrames, len(samples))]
		block := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(block[j*2:j*2+2], uint16(s))
		}
		if _, err := w.Write(block); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteSilence streams a silent file of the given geometry to w. The output
// matches Encode of an all-zero buffer, but no samples are allocated, so the
// cost is one chunk of zeros however long the file is.
func WriteSilence(w io.Writer, channels, sampleRate, frames int) error {
	l, err := newLayout(channels, sampleRate, frames)
	if err != nil {
		return err
	}

	var header [HeaderSize]byte
	putHeader(header[:], l.channels, l.sampleRate, l.dataSize)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w", err)
	}
	if frames == 0 {
		return nil
	}

	frameSize := int(l.channels) * bytesPerPCM
	zeros := make([]byte, min(frames, writeChunkFrames)*frameSize)

	for remaining := int(l.dataSize); remaining > 0; {
		n := min(remaining, len(zeros))
		if _, err := w.Write(zeros[:n]); err != nil {
			return fmt.Errorf("%w", err)
		}
		remaining -= n
	}

	return nil
}
