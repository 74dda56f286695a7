package platform

import (
	"log/slog"

	"github.com/aretw0/introducer/pkg/core"
)

// options holds the internal configuration for building an Introducer.
type options struct {
	greeter      core.Greeter
	greeting     *string
	phrasebook   string
	pattern      string
	style        string
	logger       *slog.Logger
	errorHandler func(error)
}

// Option defines a functional option for configuring the Introducer.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithGreeter injects the greeting collaborator directly.
// It takes precedence over every other greeting source.
func WithGreeter(g core.Greeter) Option {
	return func(o *options) {
		o.greeter = g
	}
}

// WithGreeting greets with a fixed phrase. The empty string is a valid phrase.
func WithGreeting(greeting string) Option {
	return func(o *options) {
		o.greeting = &greeting
	}
}

// WithPhrasebook loads greetings from the phrasebook directory at path.
// It takes precedence over WithGreeting.
func WithPhrasebook(path string) Option {
	return func(o *options) {
		o.phrasebook = path
	}
}

// WithPattern sets the doublestar pattern used to select phrasebook files.
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithStyle selects the phrasebook style. Empty means the book's default.
func WithStyle(style string) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithLogger sets the logger used while wiring and by the phrasebook adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWatcherErrorHandler registers a callback for phrasebook watch errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
