package request

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=100"`
	Bio            *string `json:"bio" binding:"omitempty,max=1000"`
	SocialTwitter  *string `json:"social_twitter" binding:"omitempty,url"`
	SocialFacebook *string `json:"social_facebook" binding:"omitempty,url"`
	SocialLinkedIn *string `json:"social_linkedin" binding:"omitempty,url"`
}
