package phrasebook

import "log/slog"

// DefaultPattern selects every YAML and JSON file below the root.
const DefaultPattern = "**/*.{yaml,yml,json}"

const defaultEventBuffer = 16

type options struct {
	pattern      string
	defaultStyle string
	logger       *slog.Logger
	errorHandler func(error)
	eventBuffer  int
}

// Option configures a Book.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		pattern:     DefaultPattern,
		logger:      slog.New(slog.DiscardHandler),
		eventBuffer: defaultEventBuffer,
	}
}

// WithPattern sets the doublestar pattern used to select phrasebook files,
// relative to the root directory.
func WithPattern(pattern string) Option {
	return func(o *options) {
		if pattern != "" {
			o.pattern = pattern
		}
	}
}

// WithDefaultStyle sets the style used when a greeter asks for "".
// Without it the first style in sorted order is used.
func WithDefaultStyle(style string) Option {
	return func(o *options) {
		o.defaultStyle = style
	}
}

// WithLogger sets the logger for loading and watching.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithErrorHandler registers a callback for errors raised inside the Watch loop
// (failed reloads, fsnotify errors). They are logged regardless.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithEventBuffer sets the size of the channel returned by Watch.
// Zero or negative means the default (16).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
