package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type CommentResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Website   string            `json:"website,omitempty"`
	Content   string            `json:"content"`
	Approved  bool              `json:"approved"`
	Replies   []CommentResponse `json:"replies,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func CommentFromEntity(c *entity.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		Name:      c.Name,
		Website:   c.Website,
		Content:   c.Content,
		Approved:  c.IsApproved,
		CreatedAt: c.CreatedAt,
	}
	if len(c.Replies) > 0 {
		resp.Replies = CommentsFromEntities(c.Replies)
	}
	return resp
}

func CommentsFromEntities(comments []entity.Comment) []CommentResponse {
	result := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, CommentFromEntity(&comments[i]))
	}
	return result
}
