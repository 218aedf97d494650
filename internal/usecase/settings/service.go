package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type Service struct {
	repo repository.SettingsRepository
}

func NewService(repo repository.SettingsRepository) *Service {
	return &Service{repo: repo}
}

// Get returns the site settings, falling back to defaults when the singleton
// row has not been created yet.
func (s *Service) Get(ctx context.Context) (*entity.SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return entity.DefaultSiteSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *Service) Update(ctx context.Context, settings *entity.SiteSettings) (*entity.SiteSettings, error) {
	settings.UpdatedAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}
	return settings, nil
}
