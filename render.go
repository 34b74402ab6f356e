// SPDX-License-Identifier: EPL-2.0

package audiostudio

import (
	"fmt"
	"io"

	"github.com/ik5/audiostudio/audio"
	"github.com/ik5/audiostudio/formats/wav"
)

// Options control what Render does between decoding and encoding.
type Options struct {
	// SampleRate resamples the audio when non-zero and different from the
	// source rate.
	SampleRate int

	// Mono averages all channels into one.
	Mono bool
}

// Prepare drains src and applies opts, returning the buffer that Render would
// encode. src is not closed.
func Prepare(src audio.Source, opts Options) (*audio.SampleBuffer, error) {
	if opts.SampleRate < 0 {
		return nil, fmt.Errorf("%w: negative sample rate %d", audio.ErrInvalidInput, opts.SampleRate)
	}

	buf, err := audio.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("collecting samples: %w", err)
	}

	// Downmix first so the resampler works on a single channel.
	if opts.Mono {
		buf = audio.Downmix(buf)
	}

	if opts.SampleRate > 0 {
		buf, err = audio.Resample(buf, opts.SampleRate)
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// Render converts src into a complete WAV file held in memory.
func Render(src audio.Source, opts Options) ([]byte, error) {
	buf, err := Prepare(src, opts)
	if err != nil {
		return nil, err
	}

	return wav.Encode(buf)
}

// RenderTo is Render writing straight to w.
func RenderTo(w io.Writer, src audio.Source, opts Options) error {
	buf, err := Prepare(src, opts)
	if err != nil {
		return err
	}

	return wav.Write(w, buf)
}
