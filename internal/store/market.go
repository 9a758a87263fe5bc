package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// marketRepo implements MarketRepo using the ent SQL builder.
type marketRepo struct {
	drv *entsql.Driver
}

func (r *marketRepo) Save(ctx context.Context, rec *MarketRecord) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now()
	}

	query, args := builder.Insert(tableMarket).
		Columns("industry", "updated_at", "payload").
		Values(rec.Industry, rec.UpdatedAt.UnixMilli(), string(rec.Payload)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save market insight: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = int(id)
	}
	return nil
}

func (r *marketRepo) Latest(ctx context.Context) (*MarketRecord, error) {
	return r.latest(ctx, "")
}

func (r *marketRepo) LatestFor(ctx context.Context, industry string) (*MarketRecord, error) {
	return r.latest(ctx, industry)
}

func (r *marketRepo) latest(ctx context.Context, industry string) (*MarketRecord, error) {
	sel := builder.Select("id", "industry", "updated_at", "payload").
		From(entsql.Table(tableMarket)).
		OrderBy(entsql.Desc("updated_at"), entsql.Desc("id")).
		Limit(1)
	if industry != "" {
		sel.Where(entsql.EQ("industry", industry))
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query latest market insight: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query latest market insight: %w", err)
		}
		return nil, nil
	}

	var (
		rec     MarketRecord
		ts      int64
		payload string
	)
	if err := rows.Scan(&rec.ID, &rec.Industry, &ts, &payload); err != nil {
		return nil, fmt.Errorf("scan market insight: %w", err)
	}
	rec.UpdatedAt = time.UnixMilli(ts)
	rec.Payload = []byte(payload)
	return &rec, nil
}

func (r *marketRepo) Prune(ctx context.Context, industry string, keep int) error {
	// Find the threshold: the Nth most recently saved record.
	query, args := builder.Select("id").
		From(entsql.Table(tableMarket)).
		Where(entsql.EQ("industry", industry)).
		OrderBy(entsql.Desc("id")).
		Offset(keep).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query market insights for prune: %w", err)
	}
	var threshold int
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	rows.Close()
	if !found {
		return nil // fewer than keep records exist
	}

	query, args = builder.Delete(tableMarket).
		Where(entsql.And(
			entsql.EQ("industry", industry),
			entsql.LTE("id", threshold),
		)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune market insights: %w", err)
	}
	return nil
}
