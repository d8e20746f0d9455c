package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) InsertMessage(ctx context.Context, msg Message) (Message, error) {
	sql := `
			INSERT INTO contact_messages(id, name, email, subject, message, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at;
		`

	msg.ID = uuid.NewString()

	err := r.pool.QueryRow(ctx, sql,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		time.Now().UTC(),
	).Scan(&msg.CreatedAt)

	if err != nil {
		return Message{}, fmt.Errorf("failed to insert contact message: %w", err)
	}

	return msg, nil
}
