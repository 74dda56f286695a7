// Package phrasebook implements a file-backed greeting collaborator.
//
// A phrasebook is a directory of small YAML or JSON documents, each naming a
// greeting style and its phrase:
//
//	# formal.yaml
//	greeting: "Good day."
//
//	# casual.yaml
//	greetings:
//	  - style: casual
//	    greeting: "Hey!"
//	  - style: shout
//	    greeting: "HELLO!"
//
// Files are selected with a doublestar pattern (default "**/*.{yaml,yml,json}").
// A Book can be reloaded explicitly or watched for changes, and hands out
// core.Greeter values that resolve their style on every call.
package phrasebook
