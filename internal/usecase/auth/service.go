package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type TokenGenerator interface {
	GenerateAccessToken(authorID uuid.UUID) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type Service struct {
	authorRepo repository.AuthorRepository
	tokens     TokenGenerator
	hasher     PasswordHasher
}

func NewService(authorRepo repository.AuthorRepository, tokens TokenGenerator, hasher PasswordHasher) *Service {
	return &Service{
		authorRepo: authorRepo,
		tokens:     tokens,
		hasher:     hasher,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*entity.Author, error) {
	exists, err := s.authorRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, domain.ErrAuthorAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	author := entity.NewAuthor(input.Email, hash, input.Name)
	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("creating author: %w", err)
	}
	return author, nil
}

type LoginResult struct {
	Author      *entity.Author
	AccessToken string
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	author, err := s.authorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !author.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Compare(author.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(author.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginResult{Author: author, AccessToken: token}, nil
}

func (s *Service) Profile(ctx context.Context, authorID uuid.UUID) (*entity.Author, error) {
	return s.authorRepo.GetByID(ctx, authorID)
}

type UpdateProfileInput struct {
	Name           *string
	Bio            *string
	SocialTwitter  *string
	SocialFacebook *string
	SocialLinkedIn *string
}

func (s *Service) UpdateProfile(ctx context.Context, authorID uuid.UUID, input UpdateProfileInput) (*entity.Author, error) {
	author, err := s.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		author.Name = *input.Name
	}
	if input.Bio != nil {
		author.Bio = *input.Bio
	}
	if input.SocialTwitter != nil {
		author.SocialTwitter = *input.SocialTwitter
	}
	if input.SocialFacebook != nil {
		author.SocialFacebook = *input.SocialFacebook
	}
	if input.SocialLinkedIn != nil {
		author.SocialLinkedIn = *input.SocialLinkedIn
	}

	if err := s.authorRepo.Update(ctx, author); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return author, nil
}
