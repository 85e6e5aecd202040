// Package snapshot loads the static provider snapshot document and
// validates it against the bundled JSON Schema before decoding.
package snapshot

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/care-finder/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// Load reads and validates a snapshot file. A failure here is reported to
// the caller; the classifier and matcher never see a partially decoded
// collection.
func Load(path string) (*types.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read snapshot", Cause: err}
	}
	return Parse(data)
}

// Parse validates and decodes raw snapshot bytes.
func Parse(data []byte) (*types.Snapshot, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &LoadError{Message: "failed to decode snapshot", Cause: err}
	}
	return &snap, nil
}

// validate checks the document against the bundled schema.
func validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Message: "snapshot is not valid JSON", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// LoadError represents a failure to read or decode a snapshot file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("snapshot %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("snapshot: %s: %v", e.Message, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	msg := "snapshot validation failed:"
	for i, err := range ve.Errors {
		msg += fmt.Sprintf("\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return msg
}
