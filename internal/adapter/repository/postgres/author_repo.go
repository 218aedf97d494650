package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

const authorColumns = `
	id, email, password_hash, name, bio,
	profile_image_url, profile_image_key,
	social_twitter, social_facebook, social_linkedin,
	is_active, created_at, updated_at
`

type AuthorRepo struct {
	pool *pgxpool.Pool
}

func NewAuthorRepo(pool *pgxpool.Pool) *AuthorRepo {
	return &AuthorRepo{pool: pool}
}

func (r *AuthorRepo) Create(ctx context.Context, a *entity.Author) error {
	query := `
		INSERT INTO authors (
			id, email, password_hash, name, bio,
			profile_image_url, profile_image_key,
			social_twitter, social_facebook, social_linkedin,
			is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Email, a.PasswordHash, a.Name, a.Bio,
		a.ProfileImageURL, a.ProfileImageKey,
		a.SocialTwitter, a.SocialFacebook, a.SocialLinkedIn,
		a.IsActive, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAuthorAlreadyExists
		}
		return fmt.Errorf("inserting author: %w", err)
	}
	return nil
}

func (r *AuthorRepo) Update(ctx context.Context, a *entity.Author) error {
	query := `
		UPDATE authors
		SET name = $2, bio = $3,
			profile_image_url = $4, profile_image_key = $5,
			social_twitter = $6, social_facebook = $7, social_linkedin = $8,
			is_active = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Bio,
		a.ProfileImageURL, a.ProfileImageKey,
		a.SocialTwitter, a.SocialFacebook, a.SocialLinkedIn,
		a.IsActive, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (r *AuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	query := fmt.Sprintf("SELECT %s FROM authors WHERE id = $1", authorColumns)
	return r.scanAuthor(ctx, query, id)
}

func (r *AuthorRepo) GetByEmail(ctx context.Context, email string) (*entity.Author, error) {
	query := fmt.Sprintf("SELECT %s FROM authors WHERE email = $1", authorColumns)
	return r.scanAuthor(ctx, query, email)
}

func (r *AuthorRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM authors WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking author email: %w", err)
	}
	return exists, nil
}

func (r *AuthorRepo) scanAuthor(ctx context.Context, query string, args ...any) (*entity.Author, error) {
	var a entity.Author
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Bio,
		&a.ProfileImageURL, &a.ProfileImageKey,
		&a.SocialTwitter, &a.SocialFacebook, &a.SocialLinkedIn,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("querying author: %w", err)
	}
	return &a, nil
}
