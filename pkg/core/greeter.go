package core

// Greeter supplies the greeting phrase that opens an introduction.
// Implementations may fail; the error is handed back to the caller untouched.
type Greeter interface {
	Greet() (string, error)
}

// GreeterFunc adapts an ordinary function to the Greeter interface.
type GreeterFunc func() (string, error)

// Greet calls f(). A nil f reports ErrNoGreeter.
func (f GreeterFunc) Greet() (string, error) {
	if f == nil {
		return "", ErrNoGreeter
	}
	return f()
}

// StaticGreeter always greets with the same phrase and never fails.
type StaticGreeter string

// Greet returns the phrase.
func (s StaticGreeter) Greet() (string, error) {
	return string(s), nil
}

var (
	_ Greeter = GreeterFunc(nil)
	_ Greeter = StaticGreeter("")
)
