package platform

import (
	"errors"
	"fmt"

	"github.com/aretw0/introducer/pkg/adapters/phrasebook"
	"github.com/aretw0/introducer/pkg/core"
)

// ErrNoGreeterConfigured is returned when no greeting source was given.
var ErrNoGreeterConfigured = errors.New("no greeter configured: use a greeter, a phrasebook or a greeting")

// New builds an Introducer from the options.
//
//	intro, err := introducer.New(introducer.WithGreeting("Hello!"))
func New(opts ...Option) (*core.Introducer, error) {
	intro, _, err := Open(opts...)
	return intro, err
}

// Open builds an Introducer and also returns the phrasebook backing it, if
// one was configured, so callers can reload or watch it. The book is nil
// for other greeting sources.
//
// Greeting sources are resolved in order: WithGreeter, WithPhrasebook,
// WithGreeting.
func Open(opts ...Option) (*core.Introducer, *phrasebook.Book, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	switch {
	case o.greeter != nil:
		o.logger.Debug("using injected greeter")
		return core.NewIntroducer(o.greeter), nil, nil

	case o.phrasebook != "":
		book, err := phrasebook.Load(o.phrasebook,
			phrasebook.WithPattern(o.pattern),
			phrasebook.WithLogger(o.logger),
			phrasebook.WithErrorHandler(o.errorHandler),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load phrasebook: %w", err)
		}
		if o.style != "" {
			if _, err := book.Lookup(o.style); err != nil {
				return nil, nil, err
			}
		}
		o.logger.Debug("using phrasebook", "path", o.phrasebook, "style", o.style, "styles", len(book.Styles()))
		return core.NewIntroducer(book.Greeter(o.style)), book, nil

	case o.greeting != nil:
		o.logger.Debug("using static greeting", "greeting", *o.greeting)
		return core.NewIntroducer(core.StaticGreeter(*o.greeting)), nil, nil
	}

	return nil, nil, ErrNoGreeterConfigured
}
