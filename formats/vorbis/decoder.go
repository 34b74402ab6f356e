// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audiostudio/audio"
)

// oggReader is the part of oggvorbis.Reader the source uses. Read fills p with
// interleaved values and returns how many values it wrote.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

// emptyReadLimit bounds how many (0, nil) reads are tolerated in a row; the
// first packets of a stream carry no audio.
const emptyReadLimit = 8

type source struct {
	dec        oggReader
	closer     io.Closer
	sampleRate int
	channels   int
	bufSize    int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return s.bufSize }

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

	for range emptyReadLimit {
		n, err := s.dec.Read(dst)
		n -= n % s.channels

		if err == io.EOF {
			return n, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		if n > 0 {
			return n, nil
		}
	}

	return 0, nil
}

// Decoder reads Ogg Vorbis streams through github.com/jfreymuth/oggvorbis.
// Samples come out already normalised to [-1, 1]. If r is an io.Closer the
// Source closes it.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	channels := dec.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: stream reports %d channels", audio.ErrInvalidInput, channels)
	}

	closer, _ := r.(io.Closer)
	return &source{
		dec:        dec,
		closer:     closer,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		bufSize:    4096 - 4096%channels,
	}, nil
}
