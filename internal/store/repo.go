package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match ("" = any)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls grouped by a key (purpose or model).
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
	Failures     int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates events by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates events by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// MarketRecord is a stored industry insight. Payload is the JSON encoding
// of the market package's IndustryInsight.
type MarketRecord struct {
	ID        int
	Industry  string
	UpdatedAt time.Time
	Payload   json.RawMessage
}

// MarketRepo keeps a history of industry insights.
type MarketRepo interface {
	// Save stores a new record.
	Save(ctx context.Context, rec *MarketRecord) error

	// Latest returns the most recent record across all industries, or nil.
	Latest(ctx context.Context) (*MarketRecord, error)

	// LatestFor returns the most recent record for industry, or nil.
	LatestFor(ctx context.Context, industry string) (*MarketRecord, error)

	// Prune deletes all but the N most recently saved records of industry.
	Prune(ctx context.Context, industry string, keep int) error
}

// AssessmentRecord is a stored quiz assessment. Payload is the JSON
// encoding of the quiz package's Assessment.
type AssessmentRecord struct {
	ID        string
	Category  string
	Score     float64
	CreatedAt time.Time
	Payload   json.RawMessage
}

// AssessmentRepo stores quiz assessments.
type AssessmentRepo interface {
	// Save inserts or replaces a record by ID.
	Save(ctx context.Context, rec *AssessmentRecord) error

	// List returns records newest first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]AssessmentRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
