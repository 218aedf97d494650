package entity

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Bio          string

	ProfileImageURL string
	ProfileImageKey string

	SocialTwitter  string
	SocialFacebook string
	SocialLinkedIn string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewAuthor(email, passwordHash, name string) *Author {
	now := time.Now().UTC()
	return &Author{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
