package promotion

import (
	"net/http"

	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register 处理 POST /api/clients/:slug/promotions。
// 除必填检查外，chance 还必须是JSON整数："7"、false 或 7.5 会以
// "not in the expected integer format" 返回400，而不是原样保存。
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := apperr.BindJSON(c, &req); err != nil {
		apperr.Respond(c, err)
		return
	}
	req.ClientSlug = c.Param("slug")

	reg, err := h.service.RegisterPromotion(c.Request.Context(), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}
