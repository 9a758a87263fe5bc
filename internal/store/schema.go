package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tableLLMEvents   = "llm_request_events"
	tableMarket      = "market_insights"
	tableAssessments = "quiz_assessments"
)

// builder renders SQLite flavored statements.
var builder = entsql.Dialect(dialect.SQLite)

func serialID() *schema.Column {
	return &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
}

func text(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeString, Default: ""}
}

// tables lists every table the store owns. Times are stored as Unix
// milliseconds so that ordering and round-trips don't depend on the
// driver's datetime parsing.
func tables() []*schema.Table {
	events := schema.NewTable(tableLLMEvents).
		AddPrimary(serialID()).
		AddColumn(&schema.Column{Name: "sequence", Type: field.TypeInt64, Unique: true}).
		AddColumn(&schema.Column{Name: "timestamp", Type: field.TypeInt64}).
		AddColumn(&schema.Column{Name: "provider", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "model", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "purpose", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0}).
		AddColumn(&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0}).
		AddColumn(&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0}).
		AddColumn(&schema.Column{Name: "success", Type: field.TypeBool}).
		AddColumn(text("error_message")).
		AddColumn(text("request_body")).
		AddColumn(text("response_body")).
		AddIndex("llm_request_events_purpose", false, []string{"purpose"})

	market := schema.NewTable(tableMarket).
		AddPrimary(serialID()).
		AddColumn(&schema.Column{Name: "industry", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "updated_at", Type: field.TypeInt64}).
		AddColumn(text("payload")).
		AddIndex("market_insights_industry", false, []string{"industry", "updated_at"})

	assessments := schema.NewTable(tableAssessments).
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeString}).
		AddColumn(text("category")).
		AddColumn(&schema.Column{Name: "score", Type: field.TypeFloat64}).
		AddColumn(&schema.Column{Name: "created_at", Type: field.TypeInt64}).
		AddColumn(text("payload")).
		AddIndex("quiz_assessments_created_at", false, []string{"created_at"})

	return []*schema.Table{events, market, assessments}
}

// migrate creates missing tables, columns and indexes. Existing data and
// tables it doesn't know about are left alone.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, tables()...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
