package insight

import (
	"context"

	"github.com/abhisek/proprep/internal/llm"
)

// Result is the outcome of one fetch. Entry is always usable: on failure
// it is the fallback entry and Failure says why.
type Result struct {
	Entry   Entry
	Failure FailureKind
	Err     error
}

// Failed reports whether the fetch fell back.
func (r Result) Failed() bool {
	return r.Failure != FailureNone
}

// Fetcher produces an insight for a skill. Implementations never return
// a zero Result: failures are folded into the fallback entry.
type Fetcher interface {
	Fetch(ctx context.Context, skill string) Result
}

// Service implements Fetcher with an LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

var _ Fetcher = (*Service)(nil)

// NewService creates a Service with the given provider and config.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Fetch issues one generation call for skill. It does not retry beyond
// what the provider middleware does.
func (s *Service) Fetch(ctx context.Context, skill string) Result {
	ctx = llm.WithPurpose(ctx, llm.PurposeSkillInsight)
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    llm.UserPrompt(BuildPrompt(skill)),
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return failed(ctx, err)
	}

	text := resp.Text()
	if text == "" {
		return failed(ctx, ErrEmptyResponse)
	}
	return Result{Entry: NewEntry(skill, text)}
}

func failed(ctx context.Context, err error) Result {
	return Result{
		Entry:   FallbackEntry(),
		Failure: classify(ctx, err),
		Err:     err,
	}
}

// Unavailable is the Fetcher used when no provider is configured. Every
// fetch falls back with FailureProvider.
type Unavailable struct {
	Err error
}

var _ Fetcher = Unavailable{}

func (u Unavailable) Fetch(ctx context.Context, skill string) Result {
	return Result{
		Entry:   FallbackEntry(),
		Failure: FailureProvider,
		Err:     &llm.ErrProviderUnavailable{Err: u.Err},
	}
}
