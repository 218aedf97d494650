package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type Service struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

func NewService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository) *Service {
	return &Service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

type CreateInput struct {
	ArticleID uuid.UUID
	ParentID  *uuid.UUID
	Name      string
	Email     string
	Website   string
	Content   string
}

// Create stores a comment awaiting moderation. Replies are limited to one
// level: replying to a reply attaches to the top-level parent instead.
func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Comment, error) {
	article, err := s.articleRepo.GetByID(ctx, input.ArticleID)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished() {
		return nil, domain.ErrArticleNotFound
	}

	parentID := input.ParentID
	if parentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.ArticleID != input.ArticleID {
			return nil, domain.ErrCommentNotFound
		}
		if parent.ParentID != nil {
			parentID = parent.ParentID
		}
	}

	comment := entity.NewComment(input.ArticleID, parentID, input.Name, input.Email, input.Website, input.Content)
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	return comment, nil
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.commentRepo.Approve(ctx, id)
}
