package category

import (
	"context"
	"fmt"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type Service struct {
	repo repository.CategoryRepository
}

func NewService(repo repository.CategoryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name, description, color string) (*entity.Category, error) {
	category := entity.NewCategory(name, description, color)
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return category, nil
}

func (s *Service) ListActive(ctx context.Context) ([]entity.Category, error) {
	return s.repo.ListActive(ctx, 0)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}
