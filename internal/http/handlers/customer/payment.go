package customer

import (
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListPayments 当前顾客的支付记录
func (h *Handler) ListPayments(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.PaymentService.List(repository.PaymentListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
		OrderID:    handlershared.QueryUint(c, "order_id"),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetPayment 支付记录详情
func (h *Handler) GetPayment(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	payment, err := h.PaymentService.Get(id, customerID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, payment)
}

// CreatePayment 为本人订单登记支付
func (h *Handler) CreatePayment(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req handlershared.PaymentRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	payment, err := h.PaymentService.Create(customerID, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, payment)
}

// UpdatePayment 修改支付记录
func (h *Handler) UpdatePayment(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.PaymentRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	payment, err := h.PaymentService.Update(id, customerID, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, payment)
}
