package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/request"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/response"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/httputil"
)

type SettingsHandler struct {
	settingsSvc SettingsService
}

func NewSettingsHandler(settingsSvc SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsSvc.Get(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SiteSettingsFromEntity(settings))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	settings, err := h.settingsSvc.Update(c.Request.Context(), &entity.SiteSettings{
		SiteName:          req.SiteName,
		SiteDescription:   req.SiteDescription,
		LogoURL:           req.LogoURL,
		FaviconURL:        req.FaviconURL,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		ContactAddress:    req.ContactAddress,
		FacebookURL:       req.FacebookURL,
		TwitterURL:        req.TwitterURL,
		InstagramURL:      req.InstagramURL,
		YoutubeURL:        req.YoutubeURL,
		MetaDescription:   req.MetaDescription,
		MetaKeywords:      req.MetaKeywords,
		GoogleAnalyticsID: req.GoogleAnalyticsID,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SiteSettingsFromEntity(settings))
}
