package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/request"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/response"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/httputil"
)

type ContactHandler struct {
	contactSvc ContactService
}

func NewContactHandler(contactSvc ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	msg, err := h.contactSvc.Submit(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.ContactMessageFromEntity(msg))
}

func (h *ContactHandler) List(c *gin.Context) {
	var req request.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	msgs, pageInfo, err := h.contactSvc.List(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ContactMessageListResponse{
		Messages:   response.ContactMessagesFromEntities(msgs),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	msgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid message id")
		return
	}

	if err := h.contactSvc.MarkRead(c.Request.Context(), msgID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
