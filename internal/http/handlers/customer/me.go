package customer

import (
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetMe 当前顾客资料
func (h *Handler) GetMe(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	customer, err := h.CustomerService.Get(customerID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

// UpdateMe 更新当前顾客资料（PUT 与 PATCH 均为部分更新）
func (h *Handler) UpdateMe(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req handlershared.CustomerRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	customer, err := h.CustomerService.Update(customerID, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}
