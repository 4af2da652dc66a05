package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpetrov/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("user not found")

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) Add(ctx context.Context, user User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", user.UID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO app_user (uid, email, display_name, password_hash, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		user.UID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	err = r.db.
		QueryRow(ctx, `
			SELECT uid, email, display_name, password_hash, created_at
			FROM app_user
			WHERE email = $1;`, email).
		Scan(&user.UID, &user.Email, &user.DisplayName, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UsersRepo) GetByUID(ctx context.Context, uid string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", uid))

	var user User
	err = r.db.
		QueryRow(ctx, `
			SELECT uid, email, display_name, password_hash, created_at
			FROM app_user
			WHERE uid = $1;`, uid).
		Scan(&user.UID, &user.Email, &user.DisplayName, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UsersRepo) UpdateDisplayName(ctx context.Context, uid, displayName string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateDisplayName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE app_user SET display_name = $1 WHERE uid = $2;`,
		displayName, uid,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
