package core

const (
	identityPrefix = "My name is "
	identitySuffix = "."
)

// FormatIdentity builds the identity sentence for name.
// The name is embedded verbatim: nothing is trimmed, escaped or rejected.
func FormatIdentity(name string) string {
	return identityPrefix + name + identitySuffix
}
