// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxTextLength is the longest accepted text, in characters.
	MaxTextLength = 100000

	MinSpeed = 0.5
	MaxSpeed = 2.0

	MinPitch = -10.0
	MaxPitch = 10.0

	// charsPerSecond is the speaking rate assumed at speed 1.
	charsPerSecond = 15
)

// Request describes one piece of text to speak.
type Request struct {
	Text    string
	Voice   string
	Emotion string

	// Speed multiplies the speaking rate.
	Speed float64

	// Pitch shifts the voice in steps; see PitchFactor.
	Pitch float64
}

// NewRequest returns a request for text with the default voice, emotion,
// speed and pitch.
func NewRequest(text string) Request {
	return Request{
		Text:    text,
		Voice:   DefaultVoice,
		Emotion: DefaultEmotion,
		Speed:   1,
	}
}

// Validate reports the first problem with r. Every error wraps
// ErrInvalidRequest.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("%w: text is blank", ErrInvalidRequest)
	}
	if n := utf8.RuneCountInString(r.Text); n > MaxTextLength {
		return fmt.Errorf("%w: text has %d characters, limit is %d", ErrInvalidRequest, n, MaxTextLength)
	}
	if _, ok := LookupVoice(r.Voice); !ok {
		return fmt.Errorf("%w: %w %q", ErrInvalidRequest, ErrUnknownVoice, r.Voice)
	}
	if _, ok := LookupEmotion(r.Emotion); !ok {
		return fmt.Errorf("%w: %w %q", ErrInvalidRequest, ErrUnknownEmotion, r.Emotion)
	}
	if r.Speed < MinSpeed || r.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %g outside [%g, %g]", ErrInvalidRequest, r.Speed, MinSpeed, MaxSpeed)
	}
	if r.Pitch < MinPitch || r.Pitch > MaxPitch {
		return fmt.Errorf("%w: pitch %g outside [%g, %g]", ErrInvalidRequest, r.Pitch, MinPitch, MaxPitch)
	}
	return nil
}

// PitchFactor maps Pitch onto a multiplier around 1: -10 is 0, +10 is 2.
func (r Request) PitchFactor() float64 {
	return 1 + r.Pitch/10
}

// EstimateDuration guesses how long text takes to say at speed, assuming 15
// characters per second at speed 1. A non-positive speed yields 0.
func EstimateDuration(text string, speed float64) time.Duration {
	secs := estimateSeconds(text, speed)
	return time.Duration(secs * float64(time.Second))
}

func estimateSeconds(text string, speed float64) float64 {
	return runeSeconds(utf8.RuneCountInString(text), speed)
}

func runeSeconds(runes int, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return float64(runes) / charsPerSecond / speed
}
