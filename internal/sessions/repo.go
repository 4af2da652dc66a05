package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mpetrov/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("training session not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session TrainingSession) (_ *TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", session.UserID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO training_session
				(user_id, training_id, name, img, start_time, end_time,
				 duration_minutes, calories, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		session.UserID, session.TrainingID, session.Name, session.Img,
		session.StartTime, session.EndTime,
		session.DurationMinutes, session.Calories,
		session.CreatedBy, session.CreatedAt,
	).Scan(&session.ID)
	if err != nil {
		return nil, fmt.Errorf("insert training session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

// ListForUser returns all session records of one user, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectColumns+`
			WHERE user_id = $1
			ORDER BY COALESCE(created_at, start_time) DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2sessions(rows)
}

// ListCreatedBetween returns all session records whose creation timestamp
// falls in [from, to], regardless of owner.
func (r *Repo) ListCreatedBetween(ctx context.Context, from, to time.Time) (_ []TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listCreatedBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(
		ctx,
		selectColumns+`
			WHERE created_at >= $1 AND created_at <= $2
			ORDER BY created_at;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2sessions(rows)
}

// ListAll returns every session record, oldest first.
func (r *Repo) ListAll(ctx context.Context) (_ []TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, selectColumns+` ORDER BY created_at;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2sessions(rows)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, selectColumns+` WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}
	return &sessions[0], nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM training_session WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

const selectColumns = `
	SELECT
		id, user_id,
		COALESCE(training_id, ''), COALESCE(name, ''), COALESCE(img, ''),
		start_time, end_time, duration_minutes, calories,
		COALESCE(created_by, ''), created_at
	FROM training_session`

func rows2sessions(rows pgx.Rows) ([]TrainingSession, error) {
	var sessions []TrainingSession
	for rows.Next() {
		var s TrainingSession
		if err := rows.Scan(
			&s.ID, &s.UserID,
			&s.TrainingID, &s.Name, &s.Img,
			&s.StartTime, &s.EndTime, &s.DurationMinutes, &s.Calories,
			&s.CreatedBy, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return sessions, nil
}
