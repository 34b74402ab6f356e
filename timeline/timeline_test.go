// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"errors"
	"testing"
	"time"
)

func fixture(t *testing.T) (*Library, *Timeline, MediaItem, MediaItem) {
	t.Helper()

	lib := NewLibrary()
	img, err := lib.Add(Image, "slide.png", "slide.png")
	if err != nil {
		t.Fatal(err)
	}
	vid, err := lib.Add(Video, "clip.mp4", "clip.mp4")
	if err != nil {
		t.Fatal(err)
	}
	return lib, New(lib), img, vid
}

func TestTimeline_Append(t *testing.T) {
	t.Parallel()

	lib, tl, img, vid := fixture(t)
	if err := lib.SetDuration(vid.ID, 8*time.Second); err != nil {
		t.Fatal(err)
	}

	first, err := tl.Append(img.ID)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	second, _ := tl.Append(vid.ID)
	third, _ := tl.Append(img.ID)

	tests := []struct {
		name     string
		item     Item
		start    time.Duration
		duration time.Duration
	}{
		{"image", first, 0, DefaultImageDuration},
		{"video", second, 3 * time.Second, 8 * time.Second},
		{"image again", third, 11 * time.Second, DefaultImageDuration},
	}
	for _, tt := range tests {
		if tt.item.Start != tt.start || tt.item.Duration != tt.duration {
			t.Errorf("%s: start %v duration %v, want %v %v", tt.name, tt.item.Start, tt.item.Duration, tt.start, tt.duration)
		}
		if tt.item.Transition != Fade {
			t.Errorf("%s: transition %q, want fade", tt.name, tt.item.Transition)
		}
	}

	if got := tl.TotalDuration(); got != 14*time.Second {
		t.Errorf("TotalDuration() = %v, want 14s", got)
	}
	if got := len(tl.Items()); got != 3 {
		t.Errorf("len(Items()) = %d, want 3", got)
	}
}

func TestTimeline_AppendUnknownMedia(t *testing.T) {
	t.Parallel()

	_, tl, _, _ := fixture(t)
	if _, err := tl.Append("nope"); !errors.Is(err, ErrMediaNotFound) {
		t.Errorf("Append() error = %v, want ErrMediaNotFound", err)
	}
}

func TestTimeline_SetDefaultTransition(t *testing.T) {
	t.Parallel()

	_, tl, img, _ := fixture(t)

	if tl.DefaultTransition() != Fade {
		t.Errorf("DefaultTransition() = %q, want fade", tl.DefaultTransition())
	}
	if err := tl.SetDefaultTransition(Zoom); err != nil {
		t.Fatalf("SetDefaultTransition() error = %v", err)
	}
	if err := tl.SetDefaultTransition("wipe"); !errors.Is(err, ErrUnknownTransition) {
		t.Errorf("SetDefaultTransition(wipe) error = %v, want ErrUnknownTransition", err)
	}

	it, _ := tl.Append(img.ID)
	if it.Transition != Zoom {
		t.Errorf("Transition = %q, want zoom", it.Transition)
	}
}

func TestTimeline_Remove(t *testing.T) {
	t.Parallel()

	_, tl, img, vid := fixture(t)
	a, _ := tl.Append(img.ID)
	b, _ := tl.Append(vid.ID)

	if err := tl.Remove(a.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := tl.Remove(a.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Remove() twice error = %v, want ErrItemNotFound", err)
	}

	items := tl.Items()
	if len(items) != 1 || items[0].ID != b.ID {
		t.Fatalf("Items() = %+v, want only %s", items, b.ID)
	}
	if items[0].Start != 3*time.Second {
		t.Errorf("remaining item moved to %v, want 3s", items[0].Start)
	}
	if got := tl.TotalDuration(); got != DefaultVideoDuration {
		t.Errorf("TotalDuration() = %v, want %v", got, DefaultVideoDuration)
	}

	c, _ := tl.Append(img.ID)
	if c.Start != b.End() {
		t.Errorf("Append() after Remove starts at %v, want %v", c.Start, b.End())
	}
}

func TestTimeline_CoverAudio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		audio time.Duration
		want  time.Duration
	}{
		{"known length", 42 * time.Second, 42 * time.Second},
		{"unknown length", 0, FallbackCoverDuration},
		{"negative length", -time.Second, FallbackCoverDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, tl, img, vid := fixture(t)
			_, _ = tl.Append(vid.ID)
			_, _ = tl.Append(vid.ID)

			it, err := tl.CoverAudio(img.ID, tt.audio)
			if err != nil {
				t.Fatalf("CoverAudio() error = %v", err)
			}
			if it.Start != 0 || it.Duration != tt.want || it.Transition != None {
				t.Errorf("CoverAudio() = %+v, want start 0, duration %v, no transition", it, tt.want)
			}

			items := tl.Items()
			if len(items) != 1 || items[0] != it {
				t.Errorf("Items() = %+v, want only the cover item", items)
			}
		})
	}
}

func TestTimeline_CoverAudioUnknownMedia(t *testing.T) {
	t.Parallel()

	_, tl, img, _ := fixture(t)
	_, _ = tl.Append(img.ID)

	if _, err := tl.CoverAudio("nope", time.Second); !errors.Is(err, ErrMediaNotFound) {
		t.Errorf("CoverAudio() error = %v, want ErrMediaNotFound", err)
	}
	if len(tl.Items()) != 1 {
		t.Error("failed CoverAudio() changed the timeline")
	}
}

func TestTimeline_Clear(t *testing.T) {
	t.Parallel()

	_, tl, img, _ := fixture(t)
	_, _ = tl.Append(img.ID)
	tl.Clear()

	if len(tl.Items()) != 0 || tl.TotalDuration() != 0 {
		t.Error("Clear() left items behind")
	}
	if it, _ := tl.Append(img.ID); it.Start != 0 {
		t.Errorf("Append() after Clear starts at %v, want 0", it.Start)
	}
}

func TestParseTransition(t *testing.T) {
	t.Parallel()

	for _, tr := range Transitions() {
		got, err := ParseTransition(string(tr))
		if err != nil || got != tr {
			t.Errorf("ParseTransition(%q) = %q, %v", tr, got, err)
		}
	}
	if len(Transitions()) != 6 {
		t.Errorf("len(Transitions()) = %d, want 6", len(Transitions()))
	}
	if _, err := ParseTransition("Fade"); !errors.Is(err, ErrUnknownTransition) {
		t.Errorf("ParseTransition(Fade) error = %v, want ErrUnknownTransition", err)
	}
}
