package question

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

type yamlSource struct {
	path string
}

// YAMLSource reads records from a questions.yaml document with the same
// shape as the JSON format.
func YAMLSource(path string) Source {
	return yamlSource{path: path}
}

func (s yamlSource) Name() string { return s.path }

func (s yamlSource) Load() ([]Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var doc questionsDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc.Questions == nil {
		return nil, fmt.Errorf("missing top-level questions key")
	}
	return doc.Questions, nil
}

// WriteYAML saves records as a questions.yaml document.
func WriteYAML(path string, records []Record) error {
	out, err := yaml.Marshal(questionsDoc{Questions: records})
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
