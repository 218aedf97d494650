package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/slugify"
)

type Tag struct {
	ID   uuid.UUID
	Name string
	Slug string

	// ArticleCount is populated by popularity queries only.
	ArticleCount int

	CreatedAt time.Time
}

func NewTag(name string) *Tag {
	return &Tag{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slugify.Make(name),
		CreatedAt: time.Now().UTC(),
	}
}
