package phrasebook

import (
	"time"

	"github.com/aretw0/introspection"
)

// BookState exposes internal state for observability.
type BookState struct {
	Root         string     `json:"root"`
	Pattern      string     `json:"pattern"`
	Styles       []string   `json:"styles"`
	DefaultStyle string     `json:"default_style,omitempty"`
	Reloads      int        `json:"reloads"`
	Watching     bool       `json:"watching"`
	LoadedAt     *time.Time `json:"loaded_at,omitempty"`
}

// State implements introspection.Introspectable.
func (b *Book) State() any {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var loadedAt *time.Time
	if !b.loadedAt.IsZero() {
		t := b.loadedAt
		loadedAt = &t
	}

	return BookState{
		Root:         b.Root,
		Pattern:      b.config.pattern,
		Styles:       b.stylesLocked(),
		DefaultStyle: b.config.defaultStyle,
		Reloads:      b.reloads,
		Watching:     b.watching,
		LoadedAt:     loadedAt,
	}
}

// ComponentType implements introspection.Component.
func (b *Book) ComponentType() string {
	return "phrasebook"
}

var _ introspection.Introspectable = (*Book)(nil)
var _ introspection.Component = (*Book)(nil)
var _ introspection.Component = (*styleGreeter)(nil)

func (b *Book) setWatching(active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.watching = active
}
