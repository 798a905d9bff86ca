package inference

// BuildOCRResponseSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the endpoint as a structured output constraint and also use it locally to validate.
func BuildOCRResponseSchema(regions []string) map[string]any {
	props := map[string]any{
		"text":       map[string]any{"type": "string"},
		"region":     map[string]any{"type": "string"},
		"language":   map[string]any{"type": "string", "minLength": 2, "maxLength": 8},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"model_note": map[string]any{"type": "string"},
	}
	required := []string{"text"}

	// Constrain region if a fixed region list is in play.
	if len(regions) > 0 {
		props["region"] = map[string]any{
			"type": "string",
			"enum": regions,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
