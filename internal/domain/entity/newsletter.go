package entity

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID           uuid.UUID
	Email        string
	IsActive     bool
	SubscribedAt time.Time
}

func NewSubscription(email string) *Subscription {
	return &Subscription{
		ID:           uuid.New(),
		Email:        email,
		IsActive:     true,
		SubscribedAt: time.Now().UTC(),
	}
}
