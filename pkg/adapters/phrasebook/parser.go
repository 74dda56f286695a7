package phrasebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// entry is one style/greeting pair.
type entry struct {
	Style    string  `yaml:"style" json:"style"`
	Greeting *string `yaml:"greeting" json:"greeting"`
}

// document is the on-disk shape of a phrasebook file.
type document struct {
	Style     string  `yaml:"style" json:"style"`
	Greeting  *string `yaml:"greeting" json:"greeting"`
	Greetings []entry `yaml:"greetings" json:"greetings"`
}

// decodeFunc decodes every document in data, in order.
type decodeFunc func(data []byte) ([]document, error)

var decoders = map[string]decodeFunc{
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".json": decodeJSON,
}

func decodeYAML(data []byte) ([]document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var docs []document
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, fmt.Errorf("invalid yaml (document %d): %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}
}

func decodeJSON(data []byte) ([]document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var docs []document
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, fmt.Errorf("invalid json (value %d): %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}
}

// parseFile decodes one phrasebook file into style/greeting pairs, in file order.
// A file may hold several YAML documents (or JSON values); a style may only
// be defined once per file. name is the slash-separated path relative to the
// book root.
func parseFile(name string, data []byte) ([]entry, error) {
	ext := strings.ToLower(path.Ext(name))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%s: unsupported extension %q", name, ext)
	}

	docs, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var entries []entry
	seen := make(map[string]bool)
	add := func(e entry) error {
		if seen[e.Style] {
			return fmt.Errorf("%s: style %q defined more than once", name, e.Style)
		}
		seen[e.Style] = true
		entries = append(entries, e)
		return nil
	}

	for _, doc := range docs {
		if doc.Greeting != nil {
			style := doc.Style
			if style == "" {
				style = strings.TrimSuffix(path.Base(name), path.Ext(name))
			}
			if err := add(entry{Style: style, Greeting: doc.Greeting}); err != nil {
				return nil, err
			}
		} else if doc.Style != "" {
			return nil, fmt.Errorf("%s: style %q has no greeting", name, doc.Style)
		}

		for i, e := range doc.Greetings {
			if e.Style == "" {
				return nil, fmt.Errorf("%s: greetings[%d] has no style", name, i)
			}
			if e.Greeting == nil {
				return nil, fmt.Errorf("%s: style %q has no greeting", name, e.Style)
			}
			if err := add(e); err != nil {
				return nil, err
			}
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: no greeting defined", name)
	}
	return entries, nil
}
