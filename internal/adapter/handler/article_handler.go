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
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/article"
)

type ArticleHandler struct {
	articleSvc ArticleService
}

func NewArticleHandler(articleSvc ArticleService) *ArticleHandler {
	return &ArticleHandler{articleSvc: articleSvc}
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req request.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	a, err := h.articleSvc.Create(c.Request.Context(), article.CreateInput{
		AuthorID:        httputil.GetAuthorID(c),
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Tags:            req.Tags,
		IsFeatured:      req.IsFeatured,
		IsBreaking:      req.IsBreaking,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		Publish:         req.Publish,
	})
	if err != nil {
		h.writeArticleError(c, err)
		return
	}

	httputil.Created(c, response.ArticleFromEntity(a))
}

func (h *ArticleHandler) Update(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid article id")
		return
	}

	var req request.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	a, err := h.articleSvc.Update(c.Request.Context(), httputil.GetAuthorID(c), articleID, article.UpdateInput{
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Tags:            req.Tags,
		IsFeatured:      req.IsFeatured,
		IsBreaking:      req.IsBreaking,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
	})
	if err != nil {
		h.writeArticleError(c, err)
		return
	}

	httputil.OK(c, response.ArticleFromEntity(a))
}

func (h *ArticleHandler) Publish(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid article id")
		return
	}

	a, err := h.articleSvc.Publish(c.Request.Context(), httputil.GetAuthorID(c), articleID)
	if err != nil {
		h.writeArticleError(c, err)
		return
	}

	httputil.OK(c, response.ArticleFromEntity(a))
}

func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	detail, err := h.articleSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ArticleDetailFromUsecase(detail))
}

func (h *ArticleHandler) List(c *gin.Context) {
	var req request.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	articles, pageInfo, err := h.articleSvc.ListPublished(c.Request.Context(), article.ListInput{
		Page:    req.Page,
		PerPage: req.PerPage,
		Search:  req.Search,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ArticleListResponse{
		Articles:   response.ArticlesFromEntities(articles),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	var req request.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	category, articles, pageInfo, err := h.articleSvc.ListByCategory(c.Request.Context(), c.Param("slug"), req.Page, req.PerPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, gin.H{
		"category":   response.CategoryFromEntity(category),
		"articles":   response.ArticlesFromEntities(articles),
		"pagination": response.PaginationFromInfo(pageInfo),
	})
}

func (h *ArticleHandler) ListByTag(c *gin.Context) {
	var req request.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	tag, articles, pageInfo, err := h.articleSvc.ListByTag(c.Request.Context(), c.Param("slug"), req.Page, req.PerPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, gin.H{
		"tag":        response.TagFromEntity(tag),
		"articles":   response.ArticlesFromEntities(articles),
		"pagination": response.PaginationFromInfo(pageInfo),
	})
}

func (h *ArticleHandler) GetAuthorPage(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid author id")
		return
	}

	author, articles, err := h.articleSvc.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.AuthorPageResponse{
		Author:   response.AuthorFromEntity(author),
		Articles: response.ArticlesFromEntities(articles),
	})
}

func (h *ArticleHandler) Trending(c *gin.Context) {
	articles, err := h.articleSvc.Trending(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, gin.H{"articles": response.ArticlesFromEntities(articles)})
}

// writeArticleError handles errors on the authoring path, where a missing
// category is the caller's mistake rather than a missing resource.
func (h *ArticleHandler) writeArticleError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrCategoryNotFound) {
		httputil.HandleError(c, apperror.BadRequest("UNKNOWN_CATEGORY", "category not found"))
		return
	}
	httputil.HandleError(c, err)
}
