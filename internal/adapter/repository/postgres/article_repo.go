package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/pagination"
)

const articleColumns = `
	id, title, slug, subtitle, content, excerpt, author_id, category_id,
	featured_image_url, featured_image_key, featured_image_alt,
	thumbnail_url, thumbnail_key,
	status, is_featured, is_breaking,
	meta_description, meta_keywords, views_count,
	created_at, updated_at, published_at
`

// publishedCond selects articles that are visible to readers.
const publishedCond = "status = 'published' AND published_at IS NOT NULL AND published_at <= NOW()"

type ArticleRepo struct {
	pool *pgxpool.Pool
}

func NewArticleRepo(pool *pgxpool.Pool) *ArticleRepo {
	return &ArticleRepo{pool: pool}
}

func (r *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	query := `
		INSERT INTO articles (
			id, title, slug, subtitle, content, excerpt, author_id, category_id,
			featured_image_url, featured_image_key, featured_image_alt,
			thumbnail_url, thumbnail_key,
			status, is_featured, is_breaking,
			meta_description, meta_keywords, views_count,
			created_at, updated_at, published_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Title, a.Slug, a.Subtitle, a.Content, a.Excerpt, a.AuthorID, a.CategoryID,
		a.FeaturedImageURL, a.FeaturedImageKey, a.FeaturedImageAlt,
		a.ThumbnailURL, a.ThumbnailKey,
		a.Status, a.IsFeatured, a.IsBreaking,
		a.MetaDescription, a.MetaKeywords, a.ViewsCount,
		a.CreatedAt, a.UpdatedAt, a.PublishedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("inserting article: %w", err)
	}
	return nil
}

func (r *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	query := `
		UPDATE articles
		SET title = $2, slug = $3, subtitle = $4, content = $5, excerpt = $6,
			category_id = $7,
			featured_image_url = $8, featured_image_key = $9, featured_image_alt = $10,
			thumbnail_url = $11, thumbnail_key = $12,
			status = $13, is_featured = $14, is_breaking = $15,
			meta_description = $16, meta_keywords = $17,
			updated_at = $18, published_at = $19
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		a.ID, a.Title, a.Slug, a.Subtitle, a.Content, a.Excerpt,
		a.CategoryID,
		a.FeaturedImageURL, a.FeaturedImageKey, a.FeaturedImageAlt,
		a.ThumbnailURL, a.ThumbnailKey,
		a.Status, a.IsFeatured, a.IsBreaking,
		a.MetaDescription, a.MetaKeywords,
		a.UpdatedAt, a.PublishedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("updating article: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleColumns)
	return r.scanArticle(r.pool.QueryRow(ctx, query, id))
}

func (r *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE slug = $1", articleColumns)
	return r.scanArticle(r.pool.QueryRow(ctx, query, slug))
}

func (r *ArticleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking slug: %w", err)
	}
	return exists, nil
}

func (r *ArticleRepo) List(ctx context.Context, params repository.ArticleListParams) ([]entity.Article, *pagination.Info, error) {
	var conditions []string
	var args []any
	argNum := 1

	if params.PublishedOnly {
		conditions = append(conditions, publishedCond)
	}

	if params.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argNum))
		args = append(args, *params.CategoryID)
		argNum++
	}

	if params.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", argNum))
		args = append(args, *params.AuthorID)
		argNum++
	}

	if params.TagID != nil {
		conditions = append(conditions, fmt.Sprintf(
			"id IN (SELECT article_id FROM article_tags WHERE tag_id = $%d)", argNum))
		args = append(args, *params.TagID)
		argNum++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR content ILIKE $%d OR excerpt ILIKE $%d)", argNum, argNum, argNum))
		args = append(args, "%"+params.Search+"%")
		argNum++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM articles WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting articles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE %s
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d
	`, articleColumns, whereClause, argNum, argNum+1)
	args = append(args, params.Pagination.Limit(), params.Pagination.Offset())

	articles, err := r.queryArticles(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	pageInfo := pagination.NewInfo(params.Pagination.Page, params.Pagination.PerPage, total)
	return articles, pageInfo, nil
}

func (r *ArticleRepo) ListFeatured(ctx context.Context, limit int) ([]entity.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE is_featured AND %s
		ORDER BY published_at DESC
		LIMIT $1
	`, articleColumns, publishedCond)
	return r.queryArticles(ctx, query, limit)
}

func (r *ArticleRepo) ListBreaking(ctx context.Context, limit int) ([]entity.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE is_breaking AND %s
		ORDER BY published_at DESC
		LIMIT $1
	`, articleColumns, publishedCond)
	return r.queryArticles(ctx, query, limit)
}

func (r *ArticleRepo) ListRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]entity.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE category_id = $1 AND id <> $2 AND %s
		ORDER BY published_at DESC
		LIMIT $3
	`, articleColumns, publishedCond)
	return r.queryArticles(ctx, query, categoryID, excludeID, limit)
}

func (r *ArticleRepo) ListTrending(ctx context.Context, limit int) ([]entity.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE %s
		ORDER BY views_count DESC
		LIMIT $1
	`, articleColumns, publishedCond)
	return r.queryArticles(ctx, query, limit)
}

// IncrementViews applies the +1 delta in a single UPDATE so concurrent
// increments are serialized by the database and none are lost.
func (r *ArticleRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		"UPDATE articles SET views_count = views_count + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("incrementing views: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepo) GetViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx, "SELECT views_count FROM articles WHERE id = $1", id).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrArticleNotFound
		}
		return 0, fmt.Errorf("querying views: %w", err)
	}
	return views, nil
}

func (r *ArticleRepo) ReplaceTags(ctx context.Context, articleID uuid.UUID, tagIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM article_tags WHERE article_id = $1", articleID); err != nil {
		return fmt.Errorf("clearing article tags: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			articleID, tagID)
		if err != nil {
			return fmt.Errorf("tagging article: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *ArticleRepo) queryArticles(ctx context.Context, query string, args ...any) ([]entity.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []entity.Article
	for rows.Next() {
		var a entity.Article
		if err := scanArticleRow(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepo) scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	if err := scanArticleRow(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("querying article: %w", err)
	}
	return &a, nil
}

func scanArticleRow(row pgx.Row, a *entity.Article) error {
	return row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Subtitle, &a.Content, &a.Excerpt, &a.AuthorID, &a.CategoryID,
		&a.FeaturedImageURL, &a.FeaturedImageKey, &a.FeaturedImageAlt,
		&a.ThumbnailURL, &a.ThumbnailKey,
		&a.Status, &a.IsFeatured, &a.IsBreaking,
		&a.MetaDescription, &a.MetaKeywords, &a.ViewsCount,
		&a.CreatedAt, &a.UpdatedAt, &a.PublishedAt,
	)
}
