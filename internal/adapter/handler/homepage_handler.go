package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler/dto/response"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/httputil"
)

type HomepageHandler struct {
	homepageSvc HomepageService
}

func NewHomepageHandler(homepageSvc HomepageService) *HomepageHandler {
	return &HomepageHandler{homepageSvc: homepageSvc}
}

func (h *HomepageHandler) Homepage(c *gin.Context) {
	data, err := h.homepageSvc.Homepage(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}
	httputil.OK(c, response.HomepageFromUsecase(data))
}

func (h *HomepageHandler) GlobalContext(c *gin.Context) {
	data, err := h.homepageSvc.GlobalContext(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}
	httputil.OK(c, response.GlobalContextFromUsecase(data))
}
