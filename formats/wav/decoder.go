// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/image/riff"

	"github.com/ik5/audiostudio/audio"
	"github.com/ik5/audiostudio/utils"
)

var (
	waveForm  = riff.FourCC{'W', 'A', 'V', 'E'}
	chunkFmt  = riff.FourCC{'f', 'm', 't', ' '}
	chunkData = riff.FourCC{'d', 'a', 't', 'a'}
)

type wavSource struct {
	r          io.Reader // the data chunk only
	closer     io.Closer
	sampleRate int
	channels   int
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return cap(s.buf) / bytesPerPCM }

func (s *wavSource) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerPCM
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	switch {
	case err == io.ErrUnexpectedEOF:
		err = io.EOF
	case err != nil && err != io.EOF:
		return 0, fmt.Errorf("%w", err)
	}

	// Drop a trailing partial frame from a truncated file.
	frameBytes := s.channels * bytesPerPCM
	samples := (n - n%frameBytes) / bytesPerPCM

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if err == io.EOF {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder streams 16-bit PCM WAV files of any channel count. Chunks other
// than fmt and data (LIST, fact, ...) are skipped. If r is an io.Closer the
// returned Source closes it.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	form, chunks, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if form != waveForm {
		return nil, ErrNotWavFile
	}

	var (
		haveFmt    bool
		channels   int
		sampleRate int
	)

	for {
		id, size, data, err := chunks.Next()
		if errors.Is(err, io.EOF) {
			return nil, ErrUnsupportedWavChunks
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}

		switch id {
		case chunkFmt:
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			var f [16]byte
			if _, err := io.ReadFull(data, f[:]); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
			}

			audioFormat := binary.LittleEndian.Uint16(f[0:2])
			bits := binary.LittleEndian.Uint16(f[14:16])
			if audioFormat != formatPCM || bits != bitsPerSample {
				return nil, ErrOnlyPCM16bitSupported
			}

			channels = int(binary.LittleEndian.Uint16(f[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(f[4:8]))
			if channels == 0 || sampleRate == 0 {
				return nil, ErrUnsupportedWavLayout
			}
			haveFmt = true

		case chunkData:
			if !haveFmt {
				return nil, ErrUnsupportedWavLayout
			}

			closer, _ := r.(io.Closer)
			return &wavSource{
				r:          data,
				closer:     closer,
				sampleRate: sampleRate,
				channels:   channels,
				buf:        make([]byte, 4096*bytesPerPCM),
			}, nil
		}
	}
}
