package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/request"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/response"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/httputil"
)

type NewsletterHandler struct {
	newsletterSvc NewsletterService
}

func NewNewsletterHandler(newsletterSvc NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterSvc: newsletterSvc}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req request.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	sub, err := h.newsletterSvc.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.SubscriptionFromEntity(sub))
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req request.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if err := h.newsletterSvc.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
