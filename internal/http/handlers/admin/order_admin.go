package admin

import (
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		CustomerID:  handlershared.QueryUint(c, "customer_id"),
		ProductID:   handlershared.QueryUint(c, "product_id"),
		SellerID:    handlershared.QueryUint(c, "seller_id"),
		Status:      strings.TrimSpace(c.Query("status")),
		CreatedFrom: parseTimeQuery(c, "created_from"),
		CreatedTo:   parseTimeQuery(c, "created_to"),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id, unscoped)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// CreateOrder 代顾客下单
func (h *Handler) CreateOrder(c *gin.Context) {
	var req handlershared.OrderRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	order, err := h.OrderService.CreateOrder(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// UpdateOrder 更新订单，可变更任意状态
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.OrderRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	order, err := h.OrderService.UpdateOrder(id, unscoped, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// DeleteOrder 删除订单及其支付记录
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.OrderService.Delete(id, unscoped); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
