package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/response"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/httputil"
)

// maxUploadSize bounds multipart image uploads at 20 MiB.
const maxUploadSize = 20 << 20

type UploadHandler struct {
	uploadSvc UploadService
}

func NewUploadHandler(uploadSvc UploadService) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc}
}

func (h *UploadHandler) SetFeaturedImage(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid article id")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_FILE", "image file is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "image exceeds the upload limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleError(c, err)
		return
	}
	defer file.Close()

	altText := c.PostForm("alt_text")

	a, err := h.uploadSvc.SetFeaturedImage(c.Request.Context(), httputil.GetAuthorID(c), articleID, file, fileHeader.Filename, altText)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ArticleFromEntity(a))
}

func (h *UploadHandler) SetProfileImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_FILE", "image file is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "image exceeds the upload limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleError(c, err)
		return
	}
	defer file.Close()

	author, err := h.uploadSvc.SetProfileImage(c.Request.Context(), httputil.GetAuthorID(c), file, fileHeader.Filename)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ProfileFromEntity(author))
}
