package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type Service struct {
	repo repository.NewsletterRepository
}

func NewService(repo repository.NewsletterRepository) *Service {
	return &Service{repo: repo}
}

// Subscribe is idempotent on the email address: a brand-new address is
// created, a lapsed one is reactivated, and an already-active one reports
// ErrAlreadySubscribed.
func (s *Service) Subscribe(ctx context.Context, email string) (*entity.Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrSubscriptionNotFound) {
			return nil, fmt.Errorf("looking up subscription: %w", err)
		}

		sub := entity.NewSubscription(email)
		if err := s.repo.Create(ctx, sub); err != nil {
			return nil, fmt.Errorf("creating subscription: %w", err)
		}
		return sub, nil
	}

	if existing.IsActive {
		return nil, domain.ErrAlreadySubscribed
	}

	if err := s.repo.SetActive(ctx, email, true); err != nil {
		return nil, fmt.Errorf("reactivating subscription: %w", err)
	}
	existing.IsActive = true
	return existing, nil
}

func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	return s.repo.SetActive(ctx, email, false)
}
