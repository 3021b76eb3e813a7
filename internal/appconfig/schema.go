package appconfig

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mwiater/autodetect/internal/templates"
	"github.com/xeipuuv/gojsonschema"
)

// familyPattern accepts the family tags the way templates.ParseFamily does: trimmed and
// case-insensitive.
func familyPattern() string {
	tags := make([]string, 0, len(templates.Families()))
	for _, f := range templates.Families() {
		tags = append(tags, regexp.QuoteMeta(string(f)))
	}
	return `^\s*(?i:` + strings.Join(tags, "|") + `)\s*$`
}

// configSchema builds the JSON Schema for config files. Templates must name a family.
func configSchema() map[string]any {
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"debug":    map[string]any{"type": "boolean"},
			"jsonMode": map[string]any{"type": "boolean"},
			"logFile":  map[string]any{"type": "string"},
			"models": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"provider", "model"},
					"properties": map[string]any{
						"title":    map[string]any{"type": "string"},
						"provider": map[string]any{"type": "string", "minLength": 1},
						"model":    map[string]any{"type": "string", "minLength": 1},
						"template": map[string]any{"type": "string", "pattern": familyPattern()},
						"capabilities": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"uploadImage": map[string]any{"type": "boolean"},
							},
							"additionalProperties": false,
						},
					},
					"additionalProperties": false,
				},
			},
		},
		"required": []any{"models"},
	}
}

// Validate checks a raw configuration document against the config schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(configSchema()),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("config failed validation: %s", strings.Join(details, "; "))
}
