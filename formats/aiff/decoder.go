// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audiostudio/audio"
)

// aiffReader is the part of aiff.Decoder the source uses.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// fullScale maps a bit depth to the magnitude of its most negative sample.
// AIFF stores every depth, 8-bit included, as signed big-endian integers.
var fullScale = map[int]float32{
	8:  1 << 7,
	16: 1 << 15,
	24: 1 << 23,
	32: 1 << 31,
}

type source struct {
	dec        aiffReader
	closer     io.Closer
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096 - 4096%s.channels
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	// go-audio reports the end of the SSND chunk as (0, nil).
	n -= n % s.channels
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	if err == io.EOF {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads uncompressed AIFF through github.com/go-audio/aiff at 8, 16,
// 24 or 32 bits. go-audio needs to seek, so a plain io.Reader is buffered in
// memory first. If r is an io.Closer the Source closes it.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	closer, _ := r.(io.Closer)

	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	scale, ok := fullScale[int(dec.BitDepth)]
	if !ok {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		closer:     closer,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
	}, nil
}
