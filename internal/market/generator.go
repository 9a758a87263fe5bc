package market

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/proprep/internal/llm"
)

// RefreshInterval is how long a generated insight stays current.
const RefreshInterval = 7 * 24 * time.Hour

const systemPrompt = `You are a labor market analyst. Answer only with JSON matching the requested schema. No notes or explanations.`

const userPromptTemplate = `Analyze the current state of the %s industry and provide insights.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.`

// Generator produces industry insights with an LLM provider.
type Generator struct {
	provider llm.Provider
	now      func() time.Time
}

// NewGenerator creates a Generator.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider, now: time.Now}
}

// Generate asks the model for a fresh insight on industry.
func (g *Generator) Generate(ctx context.Context, industry string) (*IndustryInsight, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeMarketGen)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserPrompt(fmt.Sprintf(userPromptTemplate, industry)),
		Schema:      InsightSchema,
		MaxTokens:   2048,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var in IndustryInsight
	if err := json.Unmarshal(resp.Content, &in); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	now := g.now()
	in.Industry = industry
	in.LastUpdated = now
	in.NextUpdate = now.Add(RefreshInterval)

	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("generated insight: %w", err)
	}
	return &in, nil
}
