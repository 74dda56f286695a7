package phrasebook

import (
	"context"

	"github.com/aretw0/lifecycle"
)

type bookSource struct {
	events <-chan Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits phrasebook watch events.
func NewSource(events <-chan Event) lifecycle.Source {
	return &bookSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *bookSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *bookSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
