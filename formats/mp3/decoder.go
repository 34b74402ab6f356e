// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audiostudio/audio"
	"github.com/ik5/audiostudio/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels   = 2
	frameBytes = channels * 2
)

// mp3Reader is the part of gomp3.Decoder the source uses.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	closer     io.Closer
	sampleRate int
	buf        []byte
	pending    []byte // bytes of an incomplete frame from the previous read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

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
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	// Keep reading until at least one whole frame is buffered.
	var err error
	for n < frameBytes && err == nil {
		var m int
		m, err = s.dec.Read(s.buf[n:])
		n += m
	}
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	whole := n - n%frameBytes
	if err == nil {
		s.pending = append(s.pending, s.buf[whole:n]...)
	}

	samples := whole / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if err == io.EOF {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder reads MPEG-1/2 Layer III streams through github.com/hajimehoshi/go-mp3.
// The Source is always stereo; mono files are duplicated onto both channels.
// If r is an io.Closer the Source closes it.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	closer, _ := r.(io.Closer)
	return &source{
		dec:        dec,
		closer:     closer,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
