package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/request"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/response"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/httputil"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	author, err := h.authSvc.Register(c.Request.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.ProfileFromEntity(author))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.LoginResponse{
		AccessToken: result.AccessToken,
		Author:      response.ProfileFromEntity(result.Author),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	author, err := h.authSvc.Profile(c.Request.Context(), httputil.GetAuthorID(c))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ProfileFromEntity(author))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	author, err := h.authSvc.UpdateProfile(c.Request.Context(), httputil.GetAuthorID(c), auth.UpdateProfileInput{
		Name:           req.Name,
		Bio:            req.Bio,
		SocialTwitter:  req.SocialTwitter,
		SocialFacebook: req.SocialFacebook,
		SocialLinkedIn: req.SocialLinkedIn,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ProfileFromEntity(author))
}
