package seller

import (
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders 包含本店商品的订单（只读）
func (h *Handler) ListOrders(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:      page,
		PageSize:  pageSize,
		SellerID:  sellerID,
		ProductID: handlershared.QueryUint(c, "product_id"),
		Status:    strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}
