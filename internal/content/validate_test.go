package content

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"level":    map[string]any{"type": "integer"},
			},
			"required":             []any{"question", "level"},
			"additionalProperties": false,
		},
	}
}

func TestValidateNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateConformingResponse(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is spaced practice?","level":3}`)
	if err := validateResponse(testSchema("valid-check"), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is spaced practice?"}`)
	err := validateResponse(testSchema("missing-field"), raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateWrongType(t *testing.T) {
	raw := json.RawMessage(`{"question":"q","level":"three"}`)
	err := validateResponse(testSchema("wrong-type"), raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"question":`)
	err := validateResponse(testSchema("malformed"), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateSchemaCached(t *testing.T) {
	schema := testSchema("cache-check")
	raw := json.RawMessage(`{"question":"q","level":1}`)

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load("cache-check"); !ok {
		t.Fatal("expected schema to be cached after first validation")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
