package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

type AuthorResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	SocialTwitter   string    `json:"social_twitter,omitempty"`
	SocialFacebook  string    `json:"social_facebook,omitempty"`
	SocialLinkedIn  string    `json:"social_linkedin,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProfileResponse is the authenticated author's own view, email included.
type ProfileResponse struct {
	AuthorResponse
	Email string `json:"email"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Author      ProfileResponse `json:"author"`
}

type AuthorPageResponse struct {
	Author   AuthorResponse    `json:"author"`
	Articles []ArticleResponse `json:"articles"`
}

func AuthorFromEntity(a *entity.Author) AuthorResponse {
	return AuthorResponse{
		ID:              a.ID,
		Name:            a.Name,
		Bio:             a.Bio,
		ProfileImageURL: a.ProfileImageURL,
		SocialTwitter:   a.SocialTwitter,
		SocialFacebook:  a.SocialFacebook,
		SocialLinkedIn:  a.SocialLinkedIn,
		CreatedAt:       a.CreatedAt,
	}
}

func ProfileFromEntity(a *entity.Author) ProfileResponse {
	return ProfileResponse{
		AuthorResponse: AuthorFromEntity(a),
		Email:          a.Email,
	}
}
