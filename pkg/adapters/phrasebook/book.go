package phrasebook

import (
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/introducer/pkg/core"
)

// Book is a set of greeting styles loaded from a directory.
// It is safe for concurrent use; Reload swaps the whole set at once.
type Book struct {
	Root string

	config *options

	mu        sync.RWMutex
	greetings map[string]string
	sources   map[string]string
	loadedAt  time.Time
	reloads   int
	watching  bool
}

// Load reads every file under root matching the configured pattern.
// Files are applied in lexical path order; a later file redefining a style wins.
func Load(root string, opts ...Option) (*Book, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if !doublestar.ValidatePattern(o.pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, o.pattern)
	}

	b := &Book{
		Root:   root,
		config: o,
	}
	if err := b.Reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload re-reads the phrasebook from disk. On failure the previous
// greetings stay in place.
func (b *Book) Reload() error {
	greetings, sources, err := b.read()
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.greetings = greetings
	b.sources = sources
	b.loadedAt = time.Now()
	b.reloads++
	b.mu.Unlock()

	b.config.logger.Debug("phrasebook loaded", "root", b.Root, "styles", len(greetings))
	return nil
}

func (b *Book) read() (map[string]string, map[string]string, error) {
	info, err := os.Stat(b.Root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open phrasebook: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("phrasebook root %s is not a directory", b.Root)
	}

	fsys := os.DirFS(b.Root)
	matches, err := doublestar.Glob(fsys, b.config.pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan phrasebook: %w", err)
	}
	slices.Sort(matches)

	greetings := make(map[string]string)
	sources := make(map[string]string)
	for _, name := range matches {
		fi, err := fs.Stat(fsys, name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		if fi.IsDir() {
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		entries, err := parseFile(name, data)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range entries {
			if prev, ok := sources[e.Style]; ok {
				b.config.logger.Debug("style overridden", "style", e.Style, "previous", prev, "file", name)
			}
			greetings[e.Style] = *e.Greeting
			sources[e.Style] = name
		}
	}

	if len(greetings) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrEmptyBook, b.Root)
	}
	return greetings, sources, nil
}

// Styles returns the known style names in sorted order.
func (b *Book) Styles() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stylesLocked()
}

func (b *Book) stylesLocked() []string {
	styles := make([]string, 0, len(b.greetings))
	for s := range b.greetings {
		styles = append(styles, s)
	}
	slices.Sort(styles)
	return styles
}

// Source returns the file (relative to Root) that defines style.
func (b *Book) Source(style string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	src, ok := b.sources[style]
	return src, ok
}

// DefaultStyle returns the style used for "" lookups.
func (b *Book) DefaultStyle() (string, error) {
	if b.config.defaultStyle != "" {
		return b.config.defaultStyle, nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	styles := b.stylesLocked()
	if len(styles) == 0 {
		return "", ErrEmptyBook
	}
	return styles[0], nil
}

// Lookup returns the greeting for style. An empty style means DefaultStyle.
func (b *Book) Lookup(style string) (string, error) {
	if style == "" {
		def, err := b.DefaultStyle()
		if err != nil {
			return "", err
		}
		style = def
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	greeting, ok := b.greetings[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, style)
	}
	return greeting, nil
}

// Greet implements core.Greeter using the default style.
func (b *Book) Greet() (string, error) {
	return b.Lookup("")
}

// Greeter returns a collaborator bound to style. The style is resolved on each
// call, so reloads are picked up and a style that disappears becomes an error.
func (b *Book) Greeter(style string) core.Greeter {
	return &styleGreeter{book: b, style: style}
}

type styleGreeter struct {
	book  *Book
	style string
}

func (g *styleGreeter) Greet() (string, error) {
	return g.book.Lookup(g.style)
}

// GreeterState exposes a style-bound greeter for observability.
type GreeterState struct {
	Style string    `json:"style,omitempty"`
	Book  BookState `json:"book"`
}

// State implements introspection.Introspectable.
func (g *styleGreeter) State() any {
	return GreeterState{
		Style: g.style,
		Book:  g.book.State().(BookState),
	}
}

// ComponentType implements introspection.Component.
func (g *styleGreeter) ComponentType() string {
	return "phrasebook"
}

var (
	_ core.Greeter = (*Book)(nil)
	_ core.Greeter = (*styleGreeter)(nil)
)
