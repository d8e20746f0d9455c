package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) InsertUser(ctx context.Context, user User) (User, error) {
	sql := `
			INSERT INTO users(id, name, email, password_hash, phone, user_type, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at;
		`

	user.ID = uuid.NewString()

	err := r.pool.QueryRow(ctx, sql,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		string(user.Role),
		time.Now().UTC(),
	).Scan(&user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return User{}, ErrEmailTaken
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	sql := `
			SELECT id, name, email, password_hash, COALESCE(phone, ''), user_type, created_at
			FROM users WHERE id=$1;
		`

	return r.queryUser(ctx, sql, id)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	sql := `
			SELECT id, name, email, password_hash, COALESCE(phone, ''), user_type, created_at
			FROM users WHERE email=$1;
		`

	return r.queryUser(ctx, sql, email)
}

func (r *Repository) queryUser(ctx context.Context, sql string, arg any) (User, error) {
	var user User
	var role string

	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&role,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	user.Role = Role(role)

	return user, nil
}
