package weights

import (
	"context"
	"fmt"

	"github.com/mpetrov/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record WeightRecord) (_ *WeightRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", record.UserID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO weight_report (user_id, weight, date, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		record.UserID, record.Weight, record.Date, record.CreatedBy, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return nil, fmt.Errorf("insert weight report: %w", err)
	}

	span.SetAttributes(attribute.Int("weight.id", record.ID))
	return &record, nil
}

// ListForUser returns all weight reports of one user, oldest first by
// insertion order so later reports for the same day win downstream.
func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []WeightRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, weight, date, COALESCE(created_by, ''), created_at
			FROM weight_report
			WHERE user_id = $1
			ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2records(rows)
}

func rows2records(rows pgx.Rows) ([]WeightRecord, error) {
	var records []WeightRecord
	for rows.Next() {
		var wr WeightRecord
		if err := rows.Scan(
			&wr.ID, &wr.UserID, &wr.Weight, &wr.Date, &wr.CreatedBy, &wr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, wr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return records, nil
}
