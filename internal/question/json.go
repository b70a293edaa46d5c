package question

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionsDoc is the on-disk JSON/YAML document shape.
type questionsDoc struct {
	Questions []Record `json:"questions" yaml:"questions"`
}

// fileSchema is the JSON Schema every questions.json must satisfy.
// Validation runs before decoding so a malformed file is rejected with
// a field-level error instead of a half-decoded set.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "integer"},
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
					"estimated_time": map[string]any{"type": "string"},
					"category":       map[string]any{"type": "string"},
					"steps": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{"id", "title", "difficulty"},
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compiledSchemaOnce sync.Once
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
)

// getCompiledSchema compiles fileSchema once and caches the result.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get one.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compiledSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compiledSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://questions.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compiledSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

type jsonSource struct {
	path string
}

// JSONSource reads records from a {"questions": [...]} JSON document.
func JSONSource(path string) Source {
	return jsonSource{path: path}
}

func (s jsonSource) Name() string { return s.path }

func (s jsonSource) Load() ([]Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile questions schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc questionsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return doc.Questions, nil
}

// WriteJSON saves records as a {"questions": [...]} JSON document,
// indented for hand editing.
func WriteJSON(path string, records []Record) error {
	out, err := json.MarshalIndent(questionsDoc{Questions: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
