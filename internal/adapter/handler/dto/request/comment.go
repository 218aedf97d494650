package request

import "github.com/google/uuid"

type CreateCommentRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
	Name     string     `json:"name" binding:"required,max=100"`
	Email    string     `json:"email" binding:"required,email"`
	Website  string     `json:"website" binding:"omitempty,url,max=255"`
	Content  string     `json:"content" binding:"required,max=2000"`
}
