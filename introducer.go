package introducer

import (
	"log/slog"

	"github.com/aretw0/introducer/internal/platform"
	"github.com/aretw0/introducer/pkg/adapters/phrasebook"
	"github.com/aretw0/introducer/pkg/core"
)

// --- Types ---

// Greeter is a public alias for the greeting collaborator.
type Greeter = core.Greeter

// GreeterFunc is a public alias for the function adapter.
type GreeterFunc = core.GreeterFunc

// StaticGreeter is a public alias for the fixed-phrase greeter.
type StaticGreeter = core.StaticGreeter

// Introducer is a public alias for the introduction composer.
type Introducer = core.Introducer

// Phrasebook is a public alias for the file-backed greeting book.
type Phrasebook = phrasebook.Book

// --- Configuration ---

// Option defines a functional option for configuring the Introducer.
type Option = platform.Option

// WithGreeter injects the greeting collaborator directly.
func WithGreeter(g Greeter) Option {
	return platform.WithGreeter(g)
}

// WithGreeting greets with a fixed phrase.
func WithGreeting(greeting string) Option {
	return platform.WithGreeting(greeting)
}

// WithPhrasebook loads greetings from a phrasebook directory.
func WithPhrasebook(path string) Option {
	return platform.WithPhrasebook(path)
}

// WithPattern sets the doublestar pattern selecting phrasebook files.
func WithPattern(pattern string) Option {
	return platform.WithPattern(pattern)
}

// WithStyle selects the phrasebook style.
func WithStyle(style string) Option {
	return platform.WithStyle(style)
}

// WithLogger sets the logger for wiring and phrasebook loading.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithWatcherErrorHandler registers a callback for phrasebook watch errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates an Introducer from the given options.
func New(opts ...Option) (*Introducer, error) {
	return platform.New(opts...)
}

// Open creates an Introducer and returns the phrasebook behind it (nil when
// the greeting does not come from a phrasebook).
func Open(opts ...Option) (*Introducer, *Phrasebook, error) {
	return platform.Open(opts...)
}

// NewIntroducer wires an Introducer around g without any option processing.
func NewIntroducer(g Greeter) *Introducer {
	return core.NewIntroducer(g)
}

// --- Operations ---

// FormatIdentity returns "My name is <name>.".
func FormatIdentity(name string) string {
	return core.FormatIdentity(name)
}

// Introduce is a one-shot helper: it asks g for a greeting and returns
// "<greeting> My name is <name>.".
func Introduce(g Greeter, name string) (string, error) {
	return core.NewIntroducer(g).Introduce(name)
}

// FindPhrasebook looks upwards from startDir for a ".introducer" directory.
func FindPhrasebook(startDir string) (string, error) {
	return platform.FindPhrasebook(startDir)
}
