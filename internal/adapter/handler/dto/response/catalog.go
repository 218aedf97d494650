package response

import (
	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Color        string    `json:"color"`
	ArticleCount int       `json:"article_count"`
}

type TagResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ArticleCount int       `json:"article_count,omitempty"`
}

func CategoryFromEntity(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Color:        c.Color,
		ArticleCount: c.ArticleCount,
	}
}

func CategoriesFromEntities(categories []entity.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, CategoryFromEntity(&categories[i]))
	}
	return result
}

func TagFromEntity(t *entity.Tag) TagResponse {
	return TagResponse{
		ID:           t.ID,
		Name:         t.Name,
		Slug:         t.Slug,
		ArticleCount: t.ArticleCount,
	}
}

func TagsFromEntities(tags []entity.Tag) []TagResponse {
	result := make([]TagResponse, 0, len(tags))
	for i := range tags {
		result = append(result, TagFromEntity(&tags[i]))
	}
	return result
}
