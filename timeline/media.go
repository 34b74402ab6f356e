// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	Image Kind = "image"
	Video Kind = "video"
)

// DefaultVideoDuration is assumed for videos whose length is not probed.
const DefaultVideoDuration = 5 * time.Second

// KindFromMIME treats image/* as Image and everything else as Video.
func KindFromMIME(mimeType string) Kind {
	if strings.HasPrefix(mimeType, "image") {
		return Image
	}
	return Video
}

// KindFromName guesses the kind from the file extension.
func KindFromName(name string) Kind {
	return KindFromMIME(mime.TypeByExtension(strings.ToLower(filepath.Ext(name))))
}

// MediaItem is an image or video available to the timeline. Duration is zero
// for images.
type MediaItem struct {
	ID       string
	Kind     Kind
	Name     string
	URL      string
	Duration time.Duration
}

// Library keeps media in insertion order. It is safe for concurrent use.
type Library struct {
	mu    sync.Mutex
	items []MediaItem
}

func NewLibrary() *Library {
	return &Library{}
}

// Add registers a new media item and returns it with a fresh ID.
func (l *Library) Add(kind Kind, name, url string) (MediaItem, error) {
	if kind != Image && kind != Video {
		return MediaItem{}, fmt.Errorf("%w: kind %q", ErrInvalidMedia, kind)
	}
	if url == "" {
		return MediaItem{}, fmt.Errorf("%w: empty url for %q", ErrInvalidMedia, name)
	}

	m := MediaItem{
		ID:   uuid.NewString(),
		Kind: kind,
		Name: name,
		URL:  url,
	}
	if kind == Video {
		m.Duration = DefaultVideoDuration
	}

	l.mu.Lock()
	l.items = append(l.items, m)
	l.mu.Unlock()

	return m, nil
}

// AddFile registers a local file, picking the kind from its extension.
func (l *Library) AddFile(path string) (MediaItem, error) {
	return l.Add(KindFromName(path), filepath.Base(path), path)
}

// SetDuration records the real length of a video.
func (l *Library) SetDuration(id string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: duration %s", ErrInvalidMedia, d)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrMediaNotFound, id)
	}
	if l.items[i].Kind != Video {
		return fmt.Errorf("%w: %s is not a video", ErrInvalidMedia, id)
	}
	l.items[i].Duration = d
	return nil
}

func (l *Library) Get(id string) (MediaItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	return MediaItem{}, false
}

// Remove deletes the item and reports whether it existed.
func (l *Library) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

func (l *Library) Items() []MediaItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]MediaItem(nil), l.items...)
}

func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.items)
}

func (l *Library) index(id string) int {
	for i, m := range l.items {
		if m.ID == id {
			return i
		}
	}
	return -1
}
