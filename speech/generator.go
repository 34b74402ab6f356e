// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/audiostudio/audio"
	"github.com/ik5/audiostudio/formats/wav"
	"github.com/ik5/audiostudio/internal/logger"
)

const (
	DefaultSampleRate = 44100

	outputChannels = 2
)

// DefaultMaxDuration is the estimate of the longest valid request, MaxTextLength
// runes at MinSpeed, so the default generator accepts everything Validate does.
var DefaultMaxDuration = time.Duration(runeSeconds(MaxTextLength, MinSpeed) * float64(time.Second))

// Generator turns requests into audio. It holds no mutable state and may be
// shared between goroutines.
//
// No synthesis engine is wired in: the output is stereo silence lasting as
// long as the text would take to read.
type Generator struct {
	sampleRate  int
	maxDuration time.Duration
	log         *zap.SugaredLogger
}

type Option func(*Generator)

func WithSampleRate(rate int) Option {
	return func(g *Generator) { g.sampleRate = rate }
}

// WithMaxDuration caps the estimated duration a request may produce.
func WithMaxDuration(d time.Duration) Option {
	return func(g *Generator) { g.maxDuration = d }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(g *Generator) { g.log = l }
}

func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		sampleRate:  DefaultSampleRate,
		maxDuration: DefaultMaxDuration,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", audio.ErrInvalidInput, g.sampleRate)
	}
	if g.maxDuration <= 0 {
		return nil, fmt.Errorf("%w: max duration must be positive, got %s", audio.ErrInvalidInput, g.maxDuration)
	}
	if g.log == nil {
		g.log = logger.L
	}

	return g, nil
}

func (g *Generator) SampleRate() int { return g.sampleRate }

// Frames is the number of frames Generate would produce for req.
func (g *Generator) Frames(req Request) int {
	return int(float64(g.sampleRate) * estimateSeconds(req.Text, req.Speed))
}

// prepare validates req against the generator limits and returns its frame
// count.
func (g *Generator) prepare(ctx context.Context, req Request) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("generate: %w", err)
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	if d := EstimateDuration(req.Text, req.Speed); d > g.maxDuration {
		return 0, fmt.Errorf("%w: estimated duration %s exceeds %s", ErrInvalidRequest, d.Round(time.Second), g.maxDuration)
	}
	return g.Frames(req), nil
}

func (g *Generator) logGenerated(req Request, frames int) {
	g.log.Debugw("speech generated",
		"voice", req.Voice,
		"emotion", req.Emotion,
		"speed", req.Speed,
		"pitch_factor", req.PitchFactor(),
		"frames", frames,
		"duration", time.Duration(frames)*time.Second/time.Duration(g.sampleRate),
	)
}

// Generate validates req and renders it into memory. Long texts at the
// default rate need hundreds of megabytes here; WriteWAV does not.
func (g *Generator) Generate(ctx context.Context, req Request) (*audio.SampleBuffer, error) {
	frames, err := g.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	buf, err := audio.NewSilentBuffer(outputChannels, g.sampleRate, frames)
	if err != nil {
		return nil, err
	}

	g.logGenerated(req, frames)
	return buf, nil
}

// GenerateWAV is Generate followed by WAV encoding.
func (g *Generator) GenerateWAV(ctx context.Context, req Request) ([]byte, error) {
	buf, err := g.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return wav.Encode(buf)
}

// WriteWAV streams the same bytes GenerateWAV returns to w. Memory use does
// not grow with the length of the text.
func (g *Generator) WriteWAV(ctx context.Context, w io.Writer, req Request) error {
	frames, err := g.prepare(ctx, req)
	if err != nil {
		return err
	}

	if err := wav.WriteSilence(w, outputChannels, g.sampleRate, frames); err != nil {
		return err
	}

	g.logGenerated(req, frames)
	return nil
}
