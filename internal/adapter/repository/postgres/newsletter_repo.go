package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type NewsletterRepo struct {
	pool *pgxpool.Pool
}

func NewNewsletterRepo(pool *pgxpool.Pool) *NewsletterRepo {
	return &NewsletterRepo{pool: pool}
}

func (r *NewsletterRepo) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO newsletter_subscriptions (id, email, is_active, subscribed_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, s.ID, s.Email, s.IsActive, s.SubscribedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadySubscribed
		}
		return fmt.Errorf("inserting subscription: %w", err)
	}
	return nil
}

func (r *NewsletterRepo) GetByEmail(ctx context.Context, email string) (*entity.Subscription, error) {
	query := `
		SELECT id, email, is_active, subscribed_at
		FROM newsletter_subscriptions
		WHERE email = $1
	`
	var s entity.Subscription
	err := r.pool.QueryRow(ctx, query, email).Scan(&s.ID, &s.Email, &s.IsActive, &s.SubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("querying subscription: %w", err)
	}
	return &s, nil
}

func (r *NewsletterRepo) SetActive(ctx context.Context, email string, active bool) error {
	result, err := r.pool.Exec(ctx,
		"UPDATE newsletter_subscriptions SET is_active = $2 WHERE email = $1", email, active)
	if err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}
