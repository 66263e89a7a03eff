package customer

import (
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders 当前顾客的订单
func (h *Handler) ListOrders(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
		Status:     strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id, customerID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// CreateOrder 下单，单价以商品当前价格为准
func (h *Handler) CreateOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req handlershared.OrderRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	input := req.ToInput()
	input.CustomerID = customerID
	// 顾客只能创建待支付订单
	input.Status = ""
	order, err := h.OrderService.CreateOrder(input)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// UpdateOrder 修改订单（顾客仅可取消）
func (h *Handler) UpdateOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.OrderRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	input := req.ToInput()
	input.CustomerID = 0
	order, err := h.OrderService.UpdateOrder(id, customerID, input)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// DeleteOrder 删除订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.OrderService.Delete(id, customerID); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
