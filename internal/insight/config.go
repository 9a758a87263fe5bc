package insight

import "time"

// Config controls insight generation.
type Config struct {
	// Timeout bounds a single fetch. A timed-out fetch is cached as the
	// fallback entry like any other failure. Zero disables the bound.
	Timeout time.Duration

	// MaxTokens is the token budget for the generated summary.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:     20 * time.Second,
		MaxTokens:   256,
		Temperature: 0.7,
	}
}
