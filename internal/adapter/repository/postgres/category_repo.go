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

type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, color, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.Color, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, color = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.Color, c.IsActive, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	query := `
		SELECT id, name, slug, description, color, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	return r.scanCategory(ctx, query, id)
}

func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	query := `
		SELECT id, name, slug, description, color, is_active, created_at, updated_at
		FROM categories
		WHERE slug = $1
	`
	return r.scanCategory(ctx, query, slug)
}

func (r *CategoryRepo) scanCategory(ctx context.Context, query string, args ...any) (*entity.Category, error) {
	var c entity.Category
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("querying category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) ListActive(ctx context.Context, limit int) ([]entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.description, c.color, c.is_active, c.created_at, c.updated_at,
			   COUNT(a.id) FILTER (
				   WHERE a.status = 'published' AND a.published_at IS NOT NULL AND a.published_at <= NOW()
			   ) AS article_count
		FROM categories c
		LEFT JOIN articles a ON a.category_id = c.id
		WHERE c.is_active
		GROUP BY c.id
		ORDER BY c.name
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt, &c.ArticleCount,
		); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
