package insight

import (
	"context"
	"errors"
	"net"

	"github.com/abhisek/proprep/internal/llm"
)

// FailureKind classifies why a fetch fell back. Every kind is handled the
// same way; the distinction only feeds logs and the CLI.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureNetwork
	FailureProvider
	FailureMalformed
	FailureTimeout
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureNetwork:
		return "network"
	case FailureProvider:
		return "provider"
	case FailureMalformed:
		return "malformed"
	case FailureTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// ErrEmptyResponse is reported when the provider returns no text.
var ErrEmptyResponse = errors.New("empty insight response")

// classify maps a generation error to a FailureKind. ctx is the fetch
// context so that a provider swallowing the deadline still counts as a
// timeout.
func classify(ctx context.Context, err error) FailureKind {
	var (
		invalid   *llm.ErrInvalidResponse
		truncated *llm.ErrMaxTokensExceeded
		netErr    net.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded):
		return FailureTimeout
	case errors.Is(err, ErrEmptyResponse),
		errors.As(err, &invalid),
		errors.As(err, &truncated):
		return FailureMalformed
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return FailureTimeout
		}
		return FailureNetwork
	default:
		// Rate limits, outages and anything unrecognized.
		return FailureProvider
	}
}
