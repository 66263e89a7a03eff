package admin

import (
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListPayments 支付记录列表
func (h *Handler) ListPayments(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.PaymentService.List(repository.PaymentListFilter{
		Page:          page,
		PageSize:      pageSize,
		CustomerID:    handlershared.QueryUint(c, "customer_id"),
		OrderID:       handlershared.QueryUint(c, "order_id"),
		PaymentStatus: strings.TrimSpace(c.Query("payment_status")),
		PaymentMethod: strings.TrimSpace(c.Query("payment_method")),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetPayment 支付记录详情
func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	payment, err := h.PaymentService.Get(id, unscoped)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, payment)
}

// CreatePayment 登记支付记录
func (h *Handler) CreatePayment(c *gin.Context) {
	var req handlershared.PaymentRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	payment, err := h.PaymentService.Create(unscoped, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, payment)
}

// UpdatePayment 更新支付记录
func (h *Handler) UpdatePayment(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.PaymentRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	payment, err := h.PaymentService.Update(id, unscoped, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, payment)
}

// DeletePayment 删除支付记录
func (h *Handler) DeletePayment(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.PaymentService.Delete(id); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
