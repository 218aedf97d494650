package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/request"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/response"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/httputil"
)

type CategoryHandler struct {
	categorySvc CategoryService
}

func NewCategoryHandler(categorySvc CategoryService) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	category, err := h.categorySvc.Create(c.Request.Context(), req.Name, req.Description, req.Color)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.CategoryFromEntity(category))
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categorySvc.ListActive(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, gin.H{"categories": response.CategoriesFromEntities(categories)})
}
