package prompt

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadTemplates reads a YAML template override file. Fields absent from
// the file keep their built-in defaults. The file is trusted operator
// configuration; format verbs are not validated.
func LoadTemplates(path string) (Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Templates{}, fmt.Errorf("read prompt templates: %w", err)
	}

	var tmpl Templates
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return Templates{}, fmt.Errorf("parse prompt templates: %w", err)
	}

	return tmpl.merged(), nil
}
