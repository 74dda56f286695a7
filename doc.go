// Package introducer is the Composition Root for the introducer library.
//
// It builds self-introductions such as "Hello! My name is Ada." by joining a
// greeting, supplied by a pluggable Greeter, with an identity sentence.
//
// Philosophy:
//
// The composition itself is pure: no state, no logging, no retries. Where the
// greeting comes from is a separate concern behind the Greeter interface, so
// tests can inject stubs and applications can load greeting styles from a
// phrasebook directory that is reloaded while the program runs.
//
// Features:
//
//   - **Pure core**: FormatIdentity and Introducer.Introduce never hold state.
//   - **Injected collaborator**: any Greeter, including plain functions via GreeterFunc.
//   - **Verbatim failures**: a failing Greeter's error reaches the caller unchanged.
//   - **Phrasebooks**: YAML/JSON greeting styles selected with doublestar patterns and watched for changes.
//
// Usage:
//
//	intro, err := introducer.New(introducer.WithGreeting("Hello!"))
//	if err != nil {
//		return err
//	}
//	text, err := intro.Introduce("Ada") // "Hello! My name is Ada."
package introducer
