package core

import (
	"github.com/aretw0/introspection"
)

// IntroducerState exposes internal state for observability.
type IntroducerState struct {
	GreeterType string `json:"greeter_type"`
}

// State implements introspection.Introspectable.
func (i *Introducer) State() any {
	greeterType := "none"
	if i.greeter != nil {
		greeterType = "greeter"
		// Adapters that describe themselves win over the generic label.
		if comp, ok := i.greeter.(introspection.Component); ok {
			greeterType = comp.ComponentType()
		}
	}

	return IntroducerState{
		GreeterType: greeterType,
	}
}

// ComponentType implements introspection.Component.
func (i *Introducer) ComponentType() string {
	return "introducer"
}

var _ introspection.Introspectable = (*Introducer)(nil)
var _ introspection.Component = (*Introducer)(nil)
