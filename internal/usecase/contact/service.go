package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/pagination"
)

type Service struct {
	repo repository.ContactMessageRepository
}

func NewService(repo repository.ContactMessageRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, name, email, subject, message string) (*entity.ContactMessage, error) {
	msg := entity.NewContactMessage(name, email, subject, message)
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating contact message: %w", err)
	}
	return msg, nil
}

func (s *Service) List(ctx context.Context, page, perPage int) ([]entity.ContactMessage, *pagination.Info, error) {
	return s.repo.List(ctx, pagination.NewParams(page, perPage))
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}
