package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/slugify"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// wordsPerMinute is the average reading speed used for the estimate.
const wordsPerMinute = 200

type Article struct {
	ID         uuid.UUID
	Title      string
	Slug       string
	Subtitle   string
	Content    string
	Excerpt    string
	AuthorID   uuid.UUID
	CategoryID uuid.UUID

	FeaturedImageURL string
	FeaturedImageKey string
	FeaturedImageAlt string
	ThumbnailURL     string
	ThumbnailKey     string

	Status     ArticleStatus
	IsFeatured bool
	IsBreaking bool

	MetaDescription string
	MetaKeywords    string

	ViewsCount int

	Tags     []Tag
	Author   *Author
	Category *Category

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

func NewArticle(authorID, categoryID uuid.UUID, title, subtitle, content, excerpt string) *Article {
	now := time.Now().UTC()
	return &Article{
		ID:         uuid.New(),
		Title:      title,
		Slug:       slugify.Make(title),
		Subtitle:   subtitle,
		Content:    content,
		Excerpt:    excerpt,
		AuthorID:   authorID,
		CategoryID: categoryID,
		Status:     StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Publish marks the article published, stamping PublishedAt on the first
// transition only.
func (a *Article) Publish() {
	a.Status = StatusPublished
	now := time.Now().UTC()
	if a.PublishedAt == nil {
		a.PublishedAt = &now
	}
	a.UpdatedAt = now
}

func (a *Article) Archive() {
	a.Status = StatusArchived
	a.UpdatedAt = time.Now().UTC()
}

func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished && a.PublishedAt != nil && !a.PublishedAt.After(time.Now().UTC())
}

func (a *Article) HasThumbnail() bool {
	return a.ThumbnailKey != ""
}

// ReadingTime returns the estimated reading time in minutes, never below 1.
func (a *Article) ReadingTime() int {
	words := len(strings.Fields(a.Content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

func (a *Article) SetFeaturedImage(url, key, alt string) {
	a.FeaturedImageURL = url
	a.FeaturedImageKey = key
	a.FeaturedImageAlt = alt
	a.UpdatedAt = time.Now().UTC()
}

func (a *Article) SetThumbnail(url, key string) {
	a.ThumbnailURL = url
	a.ThumbnailKey = key
	a.UpdatedAt = time.Now().UTC()
}
