package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/pagination"
)

type ContactMessageRepo struct {
	pool *pgxpool.Pool
}

func NewContactMessageRepo(pool *pgxpool.Pool) *ContactMessageRepo {
	return &ContactMessageRepo{pool: pool}
}

func (r *ContactMessageRepo) Create(ctx context.Context, m *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Message, m.IsRead, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting contact message: %w", err)
	}
	return nil
}

func (r *ContactMessageRepo) List(ctx context.Context, params pagination.Params) ([]entity.ContactMessage, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM contact_messages").Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting contact messages: %w", err)
	}

	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	var messages []entity.ContactMessage
	for rows.Next() {
		var m entity.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("scanning contact message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating contact messages: %w", err)
	}

	pageInfo := pagination.NewInfo(params.Page, params.PerPage, total)
	return messages, pageInfo, nil
}

func (r *ContactMessageRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, "UPDATE contact_messages SET is_read = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("marking contact message read: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrContactMessageNotFound
	}
	return nil
}
