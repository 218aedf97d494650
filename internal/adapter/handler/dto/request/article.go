package request

import "github.com/google/uuid"

type CreateArticleRequest struct {
	Title           string    `json:"title" binding:"required,max=255"`
	Subtitle        string    `json:"subtitle" binding:"omitempty,max=255"`
	Content         string    `json:"content" binding:"required"`
	Excerpt         string    `json:"excerpt" binding:"omitempty,max=500"`
	CategoryID      uuid.UUID `json:"category_id" binding:"required"`
	Tags            []string  `json:"tags" binding:"omitempty,max=10,dive,max=50"`
	IsFeatured      bool      `json:"is_featured"`
	IsBreaking      bool      `json:"is_breaking"`
	MetaDescription string    `json:"meta_description" binding:"omitempty,max=160"`
	MetaKeywords    string    `json:"meta_keywords" binding:"omitempty,max=255"`
	Publish         bool      `json:"publish"`
}

type UpdateArticleRequest struct {
	Title           *string    `json:"title" binding:"omitempty,max=255"`
	Subtitle        *string    `json:"subtitle" binding:"omitempty,max=255"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt" binding:"omitempty,max=500"`
	CategoryID      *uuid.UUID `json:"category_id"`
	Tags            []string   `json:"tags" binding:"omitempty,max=10,dive,max=50"`
	IsFeatured      *bool      `json:"is_featured"`
	IsBreaking      *bool      `json:"is_breaking"`
	MetaDescription *string    `json:"meta_description" binding:"omitempty,max=160"`
	MetaKeywords    *string    `json:"meta_keywords" binding:"omitempty,max=255"`
}

type ListArticlesRequest struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=50"`
	Search  string `form:"q" binding:"omitempty,max=100"`
}
