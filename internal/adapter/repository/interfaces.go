package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, params ArticleListParams) ([]entity.Article, *pagination.Info, error)
	ListFeatured(ctx context.Context, limit int) ([]entity.Article, error)
	ListBreaking(ctx context.Context, limit int) ([]entity.Article, error)
	ListRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]entity.Article, error)
	ListTrending(ctx context.Context, limit int) ([]entity.Article, error)

	// IncrementViews applies an atomic +1 delta at the storage layer so
	// concurrent readers never lose updates. Callers re-read the counter
	// when they need the fresh value.
	IncrementViews(ctx context.Context, id uuid.UUID) error
	GetViews(ctx context.Context, id uuid.UUID) (int, error)

	ReplaceTags(ctx context.Context, articleID uuid.UUID, tagIDs []uuid.UUID) error
}

type ArticleListParams struct {
	Pagination    pagination.Params
	CategoryID    *uuid.UUID
	TagID         *uuid.UUID
	AuthorID      *uuid.UUID
	Search        string
	PublishedOnly bool
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// ListActive returns active categories with their published-article
	// counts. limit <= 0 means no limit.
	ListActive(ctx context.Context, limit int) ([]entity.Category, error)
}

type TagRepository interface {
	// Upsert inserts the tag or returns the existing one with the same slug.
	Upsert(ctx context.Context, tag *entity.Tag) (*entity.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tag, error)
	ListPopular(ctx context.Context, limit int) ([]entity.Tag, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]entity.Tag, error)
}

type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	Update(ctx context.Context, author *entity.Author) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	GetByEmail(ctx context.Context, email string) (*entity.Author, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	// ListApprovedByArticle returns approved comments for the article,
	// replies included, ordered by creation time.
	ListApprovedByArticle(ctx context.Context, articleID uuid.UUID) ([]entity.Comment, error)
	Approve(ctx context.Context, id uuid.UUID) error
}

type NewsletterRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	GetByEmail(ctx context.Context, email string) (*entity.Subscription, error)
	SetActive(ctx context.Context, email string, active bool) error
}

type ContactMessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	List(ctx context.Context, params pagination.Params) ([]entity.ContactMessage, *pagination.Info, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Upsert(ctx context.Context, settings *entity.SiteSettings) error
}
