package llm

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"industry":    map[string]any{"type": "string"},
			"growthRate":  map[string]any{"type": "number"},
			"demandLevel": map[string]any{"type": "string", "enum": []any{"HIGH", "MEDIUM", "LOW"}},
			"topSkills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"industry", "demandLevel"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["growthRate"].Type != genai.TypeNumber {
		t.Fatalf("expected NUMBER for growthRate, got %s", schema.Properties["growthRate"].Type)
	}
	if len(schema.Properties["demandLevel"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["demandLevel"].Enum))
	}
	if schema.Properties["topSkills"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items, got %s", schema.Properties["topSkills"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestMapGeminiError(t *testing.T) {
	badKey := genai.APIError{Code: http.StatusBadRequest, Message: "API key not valid. Please pass a valid API key."}
	var auth *ErrAuth
	if err := mapGeminiError(badKey); !errors.As(err, &auth) {
		t.Errorf("invalid key: got %T, want ErrAuth", err)
	}

	var rl *ErrRateLimit
	if err := mapGeminiError(genai.APIError{Code: http.StatusTooManyRequests}); !errors.As(err, &rl) {
		t.Errorf("429: got %T, want ErrRateLimit", err)
	}

	var unavail *ErrProviderUnavailable
	if err := mapGeminiError(genai.APIError{Code: http.StatusServiceUnavailable}); !errors.As(err, &unavail) {
		t.Errorf("503: got %T, want ErrProviderUnavailable", err)
	}
	if err := mapGeminiError(errors.New("dial tcp: connection refused")); !errors.As(err, &unavail) {
		t.Errorf("network: got %T, want ErrProviderUnavailable", err)
	}
}
