// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Transition string

const (
	None       Transition = "none"
	Fade       Transition = "fade"
	SlideLeft  Transition = "slide-left"
	SlideRight Transition = "slide-right"
	Zoom       Transition = "zoom"
	Dissolve   Transition = "dissolve"
)

const (
	// DefaultImageDuration is how long an image stays on screen.
	DefaultImageDuration = 3 * time.Second

	// FallbackCoverDuration is used by CoverAudio when the audio length is
	// unknown.
	FallbackCoverDuration = 60 * time.Second
)

var transitions = []Transition{None, Fade, SlideLeft, SlideRight, Zoom, Dissolve}

// Transitions lists every supported transition.
func Transitions() []Transition {
	return append([]Transition(nil), transitions...)
}

func ParseTransition(s string) (Transition, error) {
	for _, t := range transitions {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTransition, s)
}

// Item places one piece of media on the timeline.
type Item struct {
	ID         string
	MediaID    string
	Start      time.Duration
	Duration   time.Duration
	Transition Transition
}

func (it Item) End() time.Duration { return it.Start + it.Duration }

// Timeline is an ordered list of items referencing a Library. Removing an
// item leaves the start of the others untouched. It is safe for concurrent
// use.
type Timeline struct {
	lib *Library

	mu         sync.Mutex
	items      []Item
	transition Transition
}

// New returns an empty timeline with Fade as the default transition.
func New(lib *Library) *Timeline {
	return &Timeline{lib: lib, transition: Fade}
}

func (t *Timeline) DefaultTransition() Transition {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.transition
}

// SetDefaultTransition changes the transition given to items appended later.
func (t *Timeline) SetDefaultTransition(tr Transition) error {
	if _, err := ParseTransition(string(tr)); err != nil {
		return err
	}

	t.mu.Lock()
	t.transition = tr
	t.mu.Unlock()
	return nil
}

// Append places mediaID right after the last item. Videos keep their own
// length and images last DefaultImageDuration.
func (t *Timeline) Append(mediaID string) (Item, error) {
	m, ok := t.lib.Get(mediaID)
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrMediaNotFound, mediaID)
	}

	d := DefaultImageDuration
	if m.Kind == Video {
		d = m.Duration
		if d <= 0 {
			d = DefaultVideoDuration
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var start time.Duration
	if n := len(t.items); n > 0 {
		start = t.items[n-1].End()
	}

	it := Item{
		ID:         uuid.NewString(),
		MediaID:    mediaID,
		Start:      start,
		Duration:   d,
		Transition: t.transition,
	}
	t.items = append(t.items, it)
	return it, nil
}

func (t *Timeline) Remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, it := range t.items {
		if it.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// CoverAudio replaces the whole timeline with mediaID shown for the length of
// the audio track. A non-positive audioDuration falls back to
// FallbackCoverDuration.
func (t *Timeline) CoverAudio(mediaID string, audioDuration time.Duration) (Item, error) {
	if _, ok := t.lib.Get(mediaID); !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrMediaNotFound, mediaID)
	}
	if audioDuration <= 0 {
		audioDuration = FallbackCoverDuration
	}

	it := Item{
		ID:         uuid.NewString(),
		MediaID:    mediaID,
		Duration:   audioDuration,
		Transition: None,
	}

	t.mu.Lock()
	t.items = []Item{it}
	t.mu.Unlock()

	return it, nil
}

func (t *Timeline) Items() []Item {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Item(nil), t.items...)
}

// TotalDuration sums the item durations.
func (t *Timeline) TotalDuration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total time.Duration
	for _, it := range t.items {
		total += it.Duration
	}
	return total
}

func (t *Timeline) Clear() {
	t.mu.Lock()
	t.items = nil
	t.mu.Unlock()
}
