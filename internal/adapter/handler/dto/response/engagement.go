package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type SubscriptionResponse struct {
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type ContactMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactMessageListResponse struct {
	Messages   []ContactMessageResponse `json:"messages"`
	Pagination PaginationResponse       `json:"pagination"`
}

func SubscriptionFromEntity(s *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		Email:        s.Email,
		IsActive:     s.IsActive,
		SubscribedAt: s.SubscribedAt,
	}
}

func ContactMessageFromEntity(m *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func ContactMessagesFromEntities(msgs []entity.ContactMessage) []ContactMessageResponse {
	result := make([]ContactMessageResponse, 0, len(msgs))
	for i := range msgs {
		result = append(result, ContactMessageFromEntity(&msgs[i]))
	}
	return result
}
