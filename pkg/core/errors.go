package core

import "errors"

// Common errors.
var (
	// ErrNoGreeter is returned by an Introducer built without a collaborator.
	ErrNoGreeter = errors.New("introducer has no greeter")
)
