package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/service"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview 获取后台仪表盘总览，seller_id 可选
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	days, _ := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("days", "7")))
	data, err := h.DashboardService.GetOverview(c.Request.Context(), service.DashboardQueryInput{
		SellerID:     handlershared.QueryUint(c, "seller_id"),
		Days:         days,
		ForceRefresh: c.Query("refresh") == "true",
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, data)
}
