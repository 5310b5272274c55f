package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func elementSchema() *Schema {
	return &Schema{
		Name:        "element",
		Description: "A chemical element",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"symbol": map[string]any{"type": "string"},
				"number": map[string]any{"type": "integer", "minimum": 1},
				"phase":  map[string]any{"type": "string", "enum": []any{"solid", "liquid", "gas"}},
			},
			"required": []any{"symbol", "number"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete object", `{"symbol":"He","number":2,"phase":"gas"}`, false},
		{"optional field omitted", `{"symbol":"Fe","number":26}`, false},
		{"missing required field", `{"symbol":"O"}`, true},
		{"wrong field type", `{"symbol":"O","number":"eight"}`, true},
		{"enum violation", `{"symbol":"C","number":6,"phase":"plasma"}`, true},
		{"below minimum", `{"symbol":"X","number":0}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty response", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(elementSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("validateResponse: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
			if string(invErr.Content) != tt.raw {
				t.Errorf("error lost the raw content: %q", invErr.Content)
			}
		})
	}
}

func TestValidateResponseNilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must accept anything, got: %v", err)
	}
}

func TestValidateResponseNestedDefinition(t *testing.T) {
	schema := &Schema{
		Name:        "balanced-equation",
		Description: "A balanced chemical equation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"compound": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"formula": map[string]any{"type": "string"},
					},
					"required": []any{"formula"},
				},
				"coefficients": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"compound", "coefficients"},
		},
	}

	valid := json.RawMessage(`{"compound":{"formula":"H2O"},"coefficients":[2,1,2]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("valid nested document rejected: %v", err)
	}

	invalid := json.RawMessage(`{"compound":{"formula":"H2O"},"coefficients":["two","one"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("wrong array item type accepted")
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	schema := elementSchema()
	if err := validateResponse(schema, json.RawMessage(`{"symbol":"H","number":1}`)); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := compiledSchemas.Load(schema.Name); !ok {
		t.Fatal("compiled schema not cached")
	}

	// A second call with a mangled definition still validates against
	// the cached compilation keyed by name.
	mangled := elementSchema()
	mangled.Definition = map[string]any{"type": "not-a-type"}
	if err := validateResponse(mangled, json.RawMessage(`{"symbol":"H","number":1}`)); err != nil {
		t.Fatalf("cached schema not reused: %v", err)
	}
}
