package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/request"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/response"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/apperror"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/httputil"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/comment"
)

type CommentHandler struct {
	commentSvc CommentService
}

func NewCommentHandler(commentSvc CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (h *CommentHandler) Create(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid article id")
		return
	}

	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	cm, err := h.commentSvc.Create(c.Request.Context(), comment.CreateInput{
		ArticleID: articleID,
		ParentID:  req.ParentID,
		Name:      req.Name,
		Email:     req.Email,
		Website:   req.Website,
		Content:   req.Content,
	})
	if err != nil {
		// A bad parent reference is the caller's mistake, not a 404.
		if errors.Is(err, domain.ErrCommentNotFound) {
			httputil.HandleError(c, apperror.BadRequest("UNKNOWN_PARENT", "parent comment not found"))
			return
		}
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.CommentFromEntity(cm))
}

func (h *CommentHandler) Approve(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid comment id")
		return
	}

	if err := h.commentSvc.Approve(c.Request.Context(), commentID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
