package entry

import (
	"net/http"

	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"github.com/gin-gonic/gin"
)

// Handler 暴露参与接口
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit 处理 POST /api/entries/:mode
func (h *Handler) Submit(c *gin.Context) {
	mode := c.Param("mode")
	// 未知模式直接返回404，不解析请求体
	if _, err := ParseMode(mode); err != nil {
		apperr.Respond(c, err)
		return
	}

	var sub Submission
	if err := apperr.BindJSON(c, &sub); err != nil {
		apperr.Respond(c, err)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), mode, sub)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
