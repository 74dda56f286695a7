package core

// separator joins the greeting and the identity sentence. It is always
// inserted, even around an empty greeting.
const separator = " "

// Introducer composes introductions from a Greeter and the identity sentence.
// It holds no mutable state and is safe for concurrent use.
type Introducer struct {
	greeter Greeter
	format  func(name string) string
}

// NewIntroducer creates an Introducer that asks g for its greetings.
func NewIntroducer(g Greeter) *Introducer {
	return &Introducer{
		greeter: g,
		format:  FormatIdentity,
	}
}

// Introduce returns "<greeting> My name is <name>.".
//
// If the greeter fails, its error is returned as is and no identity
// sentence is built.
func (i *Introducer) Introduce(name string) (string, error) {
	if i.greeter == nil {
		return "", ErrNoGreeter
	}

	greeting, err := i.greeter.Greet()
	if err != nil {
		return "", err
	}

	return greeting + separator + i.format(name), nil
}

// Greeter returns the injected collaborator.
func (i *Introducer) Greeter() Greeter {
	return i.greeter
}
