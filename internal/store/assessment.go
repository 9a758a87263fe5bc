package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// assessmentRepo implements AssessmentRepo using the ent SQL builder.
type assessmentRepo struct {
	drv *entsql.Driver
}

func (r *assessmentRepo) Save(ctx context.Context, rec *AssessmentRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("save assessment: empty id")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	query, args := builder.Insert(tableAssessments).
		Columns("id", "category", "score", "created_at", "payload").
		Values(rec.ID, rec.Category, rec.Score, rec.CreatedAt.UnixMilli(), string(rec.Payload)).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save assessment %s: %w", rec.ID, err)
	}
	return nil
}

func (r *assessmentRepo) List(ctx context.Context, limit int) ([]AssessmentRecord, error) {
	sel := builder.Select("id", "category", "score", "created_at", "payload").
		From(entsql.Table(tableAssessments)).
		OrderBy(entsql.Desc("created_at"), "id")
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var recs []AssessmentRecord
	for rows.Next() {
		var (
			rec     AssessmentRecord
			ts      int64
			payload string
		)
		if err := rows.Scan(&rec.ID, &rec.Category, &rec.Score, &ts, &payload); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		rec.CreatedAt = time.UnixMilli(ts)
		rec.Payload = []byte(payload)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}
	return recs, nil
}

func (r *assessmentRepo) Count(ctx context.Context) (int, error) {
	query, args := builder.Select(entsql.Count("*")).
		From(entsql.Table(tableAssessments)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan assessment count: %w", err)
		}
	}
	return n, rows.Err()
}
