package market

import "github.com/abhisek/proprep/internal/llm"

// InsightSchema defines the JSON schema for LLM industry insight responses.
var InsightSchema = &llm.Schema{
	Name:        "industry-insight",
	Description: "Current market analysis of one industry for job seekers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"salaryRanges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"role":     map[string]any{"type": "string"},
						"min":      map[string]any{"type": "number", "minimum": 0},
						"max":      map[string]any{"type": "number", "minimum": 0},
						"median":   map[string]any{"type": "number", "minimum": 0},
						"location": map[string]any{"type": "string"},
					},
					"required":             []any{"role", "min", "max", "median", "location"},
					"additionalProperties": false,
				},
				"description": "Yearly USD salary bands for at least 5 common roles",
			},
			"growthRate": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Industry growth rate as a percentage",
			},
			"demandLevel": map[string]any{
				"type": "string",
				"enum": []any{"High", "Medium", "Low"},
			},
			"topSkills": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "At least 5 skills most in demand",
			},
			"marketOutlook": map[string]any{
				"type": "string",
				"enum": []any{"Positive", "Neutral", "Negative"},
			},
			"keyTrends": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "At least 5 current industry trends",
			},
			"recommendedSkills": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Skills worth acquiring next",
			},
		},
		"required":             []any{"salaryRanges", "growthRate", "demandLevel", "topSkills", "marketOutlook", "keyTrends", "recommendedSkills"},
		"additionalProperties": false,
	},
}
