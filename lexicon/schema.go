package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

//go:embed lexicon.schema.json
var schemaSource []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.NewCompiler().Compile(schemaSource)
	})
	return schema, schemaErr
}

// validate checks a decoded lexicon document against the lexicon schema.
func validate(doc any) error {
	if _, ok := doc.(map[string]any); !ok {
		return errors.New("document must be a mapping of category to lemma list")
	}

	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("lexicon schema: %w", err)
	}

	result := s.Validate(doc)
	if result.IsValid() {
		return nil
	}

	// sorted for stable messages
	keys := make([]string, 0, len(result.Errors))
	for k := range result.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %v", k, result.Errors[k]))
	}

	return errors.New(strings.Join(msgs, "; "))
}
