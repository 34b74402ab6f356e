// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/audiostudio/utils"
)

// Resample converts buf to dstRate with Catmull-Rom interpolation, channel by
// channel. Edge frames are repeated where the spline needs neighbours outside
// the buffer. A buffer already at dstRate is returned as is.
func Resample(buf *SampleBuffer, dstRate int) (*SampleBuffer, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidInput)
	}
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: target rate must be positive, got %d", ErrInvalidInput, dstRate)
	}
	if dstRate == buf.sampleRate {
		return buf, nil
	}

	outFrames := int(math.Ceil(float64(buf.frames) * float64(dstRate) / float64(buf.sampleRate)))
	out, err := NewSilentBuffer(len(buf.channels), dstRate, outFrames)
	if err != nil {
		return nil, err
	}
	if buf.frames == 0 {
		return out, nil
	}

	ratio := float64(buf.sampleRate) / float64(dstRate)
	last := buf.frames - 1
	at := func(ch []float32, i int) float32 {
		return ch[max(0, min(i, last))]
	}

	for c, src := range buf.channels {
		dst := out.channels[c]
		for i := range dst {
			pos := float64(i) * ratio
			idx := int(pos)
			t := float32(pos - float64(idx))

			dst[i] = utils.CubicInterpolate([4]float32{
				at(src, idx-1),
				at(src, idx),
				at(src, idx+1),
				at(src, idx+2),
			}, t)
		}
	}

	return out, nil
}

// Downmix averages every channel into a single mono channel. Mono input is
// returned unchanged.
func Downmix(buf *SampleBuffer) *SampleBuffer {
	nch := len(buf.channels)
	if nch == 1 {
		return buf
	}

	mono := make([]float32, buf.frames)
	inv := float32(1.0) / float32(nch)

	switch nch {
	case 2:
		l, r := buf.channels[0], buf.channels[1]
		for f := range mono {
			mono[f] = (l[f] + r[f]) * 0.5
		}
	default:
		for f := range mono {
			var sum float32
			for _, ch := range buf.channels {
				sum += ch[f]
			}
			mono[f] = sum * inv
		}
	}

	return &SampleBuffer{
		sampleRate: buf.sampleRate,
		frames:     buf.frames,
		channels:   [][]float32{mono},
	}
}
