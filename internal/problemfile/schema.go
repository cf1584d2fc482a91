package problemfile

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema infers the JSON Schema of a problem document from Spec.
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[Spec](nil)
	if err != nil {
		return nil, fmt.Errorf("problemfile: infer schema: %w", err)
	}
	s.Title = "blindsearch problem"

	return s, nil
}

// SchemaJSON renders Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	s, err := Schema()
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(s, "", "  ")
}
