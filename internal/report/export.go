package report

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/venturelens/venturelens/internal/model"
)

// JSON renders the report as indented JSON.
func JSON(r *model.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report as JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// YAML renders the report as YAML.
func YAML(r *model.Report) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encoding report as YAML: %w", err)
	}
	return string(data), nil
}

// Render produces the report in the named format: text, markdown, json, or
// yaml.
func Render(r *model.Report, format string) (string, error) {
	switch format {
	case "", "text":
		return Text(r), nil
	case "markdown", "md":
		return Markdown(r), nil
	case "json":
		return JSON(r)
	case "yaml", "yml":
		return YAML(r)
	}
	return "", fmt.Errorf("unknown report format %q", format)
}
