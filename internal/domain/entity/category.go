package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/slugify"
)

const DefaultCategoryColor = "#007bff"

type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	Color       string
	IsActive    bool

	// ArticleCount is the number of published articles, populated by
	// aggregate queries only.
	ArticleCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCategory(name, description, color string) *Category {
	if color == "" {
		color = DefaultCategoryColor
	}
	now := time.Now().UTC()
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slugify.Make(name),
		Description: description,
		Color:       color,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
