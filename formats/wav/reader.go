// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audiostudio/audio"
	"github.com/ik5/audiostudio/utils"
)

// ReadBuffer loads a whole PCM WAV file (8, 16, 24 or 32-bit) into a
// SampleBuffer. 16-bit data is mapped back with utils.Int16ToFloat32, the
// exact inverse of the encoder's quantisation, so a file written by Encode
// reads back within one quantisation step.
func ReadBuffer(r io.ReadSeeker) (*audio.SampleBuffer, error) {
	d := gowav.NewDecoder(r)

	// IsValidFile rejects files with an empty data chunk, which Encode
	// produces for zero frames, so check the parsed header directly.
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if d.NumChans == 0 || d.SampleRate == 0 {
		return nil, ErrNotWavFile
	}
	if d.WavAudioFormat != formatPCM {
		return nil, ErrOnlyPCM16bitSupported
	}

	normalise, err := normaliser(int(d.BitDepth))
	if err != nil {
		return nil, err
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples := toFloat(pcm, normalise)
	return audio.FromInterleaved(int(d.SampleRate), int(d.NumChans), samples)
}

func toFloat(pcm *goaudio.IntBuffer, normalise func(int) float32) []float32 {
	out := make([]float32, len(pcm.Data))
	for i, v := range pcm.Data {
		out[i] = normalise(v)
	}
	return out
}

func normaliser(bitDepth int) (func(int) float32, error) {
	switch bitDepth {
	case 8:
		// 8-bit WAV is unsigned with 128 as silence.
		return func(v int) float32 { return float32(v-128) / 128.0 }, nil
	case 16:
		return func(v int) float32 { return utils.Int16ToFloat32(int16(v)) }, nil
	case 24:
		return func(v int) float32 { return float32(v) / 8388608.0 }, nil
	case 32:
		return func(v int) float32 { return float32(float64(v) / 2147483648.0) }, nil
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}
}
