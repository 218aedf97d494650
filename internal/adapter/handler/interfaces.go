package handler

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/pagination"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/article"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/auth"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/comment"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/homepage"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ArticleService interface {
	Create(ctx context.Context, input article.CreateInput) (*entity.Article, error)
	Update(ctx context.Context, authorID, articleID uuid.UUID, input article.UpdateInput) (*entity.Article, error)
	Publish(ctx context.Context, authorID, articleID uuid.UUID) (*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*article.Detail, error)
	ListPublished(ctx context.Context, input article.ListInput) ([]entity.Article, *pagination.Info, error)
	ListByCategory(ctx context.Context, slug string, page, perPage int) (*entity.Category, []entity.Article, *pagination.Info, error)
	ListByTag(ctx context.Context, slug string, page, perPage int) (*entity.Tag, []entity.Article, *pagination.Info, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) (*entity.Author, []entity.Article, error)
	Trending(ctx context.Context) ([]entity.Article, error)
}

type HomepageService interface {
	Homepage(ctx context.Context) (*homepage.HomepageData, error)
	GlobalContext(ctx context.Context) (*homepage.GlobalContextData, error)
}

type AuthService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*entity.Author, error)
	Login(ctx context.Context, email, password string) (*auth.LoginResult, error)
	Profile(ctx context.Context, authorID uuid.UUID) (*entity.Author, error)
	UpdateProfile(ctx context.Context, authorID uuid.UUID, input auth.UpdateProfileInput) (*entity.Author, error)
}

type CommentService interface {
	Create(ctx context.Context, input comment.CreateInput) (*entity.Comment, error)
	Approve(ctx context.Context, id uuid.UUID) error
}

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*entity.Subscription, error)
	Unsubscribe(ctx context.Context, email string) error
}

type ContactService interface {
	Submit(ctx context.Context, name, email, subject, message string) (*entity.ContactMessage, error)
	List(ctx context.Context, page, perPage int) ([]entity.ContactMessage, *pagination.Info, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type CategoryService interface {
	Create(ctx context.Context, name, description, color string) (*entity.Category, error)
	ListActive(ctx context.Context) ([]entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Update(ctx context.Context, settings *entity.SiteSettings) (*entity.SiteSettings, error)
}

type UploadService interface {
	SetFeaturedImage(ctx context.Context, authorID, articleID uuid.UUID, file io.Reader, filename, altText string) (*entity.Article, error)
	SetProfileImage(ctx context.Context, authorID uuid.UUID, file io.Reader, filename string) (*entity.Author, error)
}
