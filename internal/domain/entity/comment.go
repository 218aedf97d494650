package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reader comment on an article. Comments are held for
// moderation and only served once approved. A non-nil ParentID makes the
// comment a reply.
type Comment struct {
	ID         uuid.UUID
	ArticleID  uuid.UUID
	ParentID   *uuid.UUID
	Name       string
	Email      string
	Website    string
	Content    string
	IsApproved bool
	CreatedAt  time.Time

	Replies []Comment
}

func NewComment(articleID uuid.UUID, parentID *uuid.UUID, name, email, website, content string) *Comment {
	return &Comment{
		ID:        uuid.New(),
		ArticleID: articleID,
		ParentID:  parentID,
		Name:      name,
		Email:     email,
		Website:   website,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

func (c *Comment) Approve() {
	c.IsApproved = true
}
