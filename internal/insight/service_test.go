package insight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/proprep/internal/llm"
)

// slowProvider waits for delay or the context, whichever ends first.
type slowProvider struct {
	delay time.Duration
}

func (p *slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	select {
	case <-time.After(p.delay):
		return &llm.Response{Content: []byte("late")}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *slowProvider) ModelID() string { return "slow" }

// purposeProvider records the purpose label of each request.
type purposeProvider struct {
	purpose string
	req     llm.Request
}

func (p *purposeProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.purpose = llm.PurposeFrom(ctx)
	p.req = req
	return &llm.Response{Content: []byte("  Go is everywhere.  \n")}, nil
}

func (p *purposeProvider) ModelID() string { return "purpose" }

func TestServiceFetchSuccess(t *testing.T) {
	p := &purposeProvider{}
	svc := NewService(p, Config{MaxTokens: 128, Temperature: 0.5})

	res := svc.Fetch(context.Background(), "Go")

	require.False(t, res.Failed())
	assert.Equal(t, "Go is everywhere.", res.Entry.Summary)
	assert.Equal(t, llm.PurposeSkillInsight, p.purpose)
	assert.Equal(t, 128, p.req.MaxTokens)
	assert.Equal(t, 0.5, p.req.Temperature)
	require.Len(t, p.req.Messages, 1)
	assert.Equal(t, BuildPrompt("Go"), p.req.Messages[0].Content)
	assert.Nil(t, p.req.Schema)
}

func TestServiceFetchEmptyTextIsMalformed(t *testing.T) {
	svc := NewService(llm.NewMockProvider(llm.MockText("   ")), DefaultConfig())

	res := svc.Fetch(context.Background(), "Go")

	assert.Equal(t, FailureMalformed, res.Failure)
	assert.ErrorIs(t, res.Err, ErrEmptyResponse)
	assert.Equal(t, FallbackEntry(), res.Entry)
}

func TestServiceFetchTimeout(t *testing.T) {
	svc := NewService(&slowProvider{delay: time.Second}, Config{Timeout: 5 * time.Millisecond})

	res := svc.Fetch(context.Background(), "Go")

	assert.Equal(t, FailureTimeout, res.Failure)
	assert.Equal(t, FallbackSummary, res.Entry.Summary)
}

type fakeNetErr struct{ timeout bool }

func (e fakeNetErr) Error() string   { return "dial tcp: connection refused" }
func (e fakeNetErr) Timeout() bool   { return e.timeout }
func (e fakeNetErr) Temporary() bool { return false }

var _ net.Error = fakeNetErr{}

func TestClassify(t *testing.T) {
	bg := context.Background()
	expired, cancel := context.WithDeadline(bg, time.Now().Add(-time.Second))
	defer cancel()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want FailureKind
	}{
		{"deadline", bg, fmt.Errorf("gemini: %w", context.DeadlineExceeded), FailureTimeout},
		{"expired context", expired, errors.New("request aborted"), FailureTimeout},
		{"empty", bg, ErrEmptyResponse, FailureMalformed},
		{"invalid", bg, &llm.ErrInvalidResponse{Err: errors.New("bad json")}, FailureMalformed},
		{"truncated", bg, &llm.ErrMaxTokensExceeded{}, FailureMalformed},
		{"network", bg, &net.OpError{Op: "dial", Err: fakeNetErr{}}, FailureNetwork},
		{"network timeout", bg, fakeNetErr{timeout: true}, FailureTimeout},
		{"rate limit", bg, &llm.ErrRateLimit{Err: errors.New("429")}, FailureProvider},
		{"unavailable", bg, &llm.ErrProviderUnavailable{}, FailureProvider},
		{"unknown", bg, errors.New("boom"), FailureProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.ctx, tt.err))
		})
	}
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "none", FailureNone.String())
	assert.Equal(t, "network", FailureNetwork.String())
	assert.Equal(t, "provider", FailureProvider.String())
	assert.Equal(t, "malformed", FailureMalformed.String())
	assert.Equal(t, "timeout", FailureTimeout.String())
	assert.Equal(t, "unknown", FailureKind(99).String())
}

func TestUnavailableFallsBack(t *testing.T) {
	res := Unavailable{}.Fetch(context.Background(), "Go")

	assert.True(t, res.Failed())
	assert.Equal(t, FailureProvider, res.Failure)
	assert.Equal(t, FallbackSummary, res.Entry.Summary)

	var unavailable *llm.ErrProviderUnavailable
	assert.ErrorAs(t, res.Err, &unavailable)
}
