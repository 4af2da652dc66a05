package trainings

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpetrov/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTrainingNotFound = errors.New("training not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, training Training) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", training.UserID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO training (user_id, name, description, img, exercises, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		training.UserID, training.Name, training.Description, training.Img,
		training.Exercises, training.CreatedBy, training.CreatedAt,
	).Scan(&training.ID)
	if err != nil {
		return nil, fmt.Errorf("insert training: %w", err)
	}

	span.SetAttributes(attribute.Int("training.id", training.ID))
	return &training, nil
}

// List returns all training definitions, newest first.
func (r *Repo) List(ctx context.Context) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, name, COALESCE(description, ''), COALESCE(img, ''),
				COALESCE(exercises, '{}'), COALESCE(created_by, ''), created_at
			FROM training
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var trainings []Training
	for rows.Next() {
		var t Training
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Name, &t.Description, &t.Img,
			&t.Exercises, &t.CreatedBy, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		trainings = append(trainings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trainings, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var t Training
	err = r.db.QueryRow(
		ctx,
		`SELECT
				id, user_id, name, COALESCE(description, ''), COALESCE(img, ''),
				COALESCE(exercises, '{}'), COALESCE(created_by, ''), created_at
			FROM training
			WHERE id = $1;`,
		id,
	).Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.Img,
		&t.Exercises, &t.CreatedBy, &t.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTrainingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row: %w", err)
	}
	return &t, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM training WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}
	return nil
}
