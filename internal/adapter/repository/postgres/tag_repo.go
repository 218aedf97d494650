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

type TagRepo struct {
	pool *pgxpool.Pool
}

func NewTagRepo(pool *pgxpool.Pool) *TagRepo {
	return &TagRepo{pool: pool}
}

func (r *TagRepo) Upsert(ctx context.Context, tag *entity.Tag) (*entity.Tag, error) {
	query := `
		INSERT INTO tags (id, name, slug, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET name = tags.name
		RETURNING id, name, slug, created_at
	`
	var out entity.Tag
	err := r.pool.QueryRow(ctx, query, tag.ID, tag.Name, tag.Slug, tag.CreatedAt).Scan(
		&out.ID, &out.Name, &out.Slug, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting tag: %w", err)
	}
	return &out, nil
}

func (r *TagRepo) GetBySlug(ctx context.Context, slug string) (*entity.Tag, error) {
	var t entity.Tag
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, slug, created_at FROM tags WHERE slug = $1", slug).Scan(
		&t.ID, &t.Name, &t.Slug, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("querying tag: %w", err)
	}
	return &t, nil
}

func (r *TagRepo) ListPopular(ctx context.Context, limit int) ([]entity.Tag, error) {
	query := `
		SELECT t.id, t.name, t.slug, t.created_at, COUNT(at.article_id) AS article_count
		FROM tags t
		LEFT JOIN article_tags at ON at.tag_id = t.id
		GROUP BY t.id
		ORDER BY article_count DESC, t.name
		LIMIT $1
	`
	return r.queryTagsWithCount(ctx, query, limit)
}

func (r *TagRepo) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]entity.Tag, error) {
	query := `
		SELECT t.id, t.name, t.slug, t.created_at
		FROM tags t
		JOIN article_tags at ON at.tag_id = t.id
		WHERE at.article_id = $1
		ORDER BY t.name
	`
	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("querying article tags: %w", err)
	}
	defer rows.Close()

	var tags []entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *TagRepo) queryTagsWithCount(ctx context.Context, query string, args ...any) ([]entity.Tag, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tags []entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.ArticleCount); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
