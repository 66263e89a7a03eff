package customer

import (
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCart 当前顾客的购物车
func (h *Handler) ListCart(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.CartService.List(repository.CartListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// AddCartItem 加入购物车，同一商品累加数量
func (h *Handler) AddCartItem(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req handlershared.CartRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	input := req.ToInput()
	input.CustomerID = customerID
	item, err := h.CartService.Add(input)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateCartItem 修改购物车行
func (h *Handler) UpdateCartItem(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.CartRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	input := req.ToInput()
	input.CustomerID = 0
	item, err := h.CartService.Update(id, customerID, input)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// RemoveCartItem 删除购物车行
func (h *Handler) RemoveCartItem(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CartService.Remove(id, customerID); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(customerID); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
