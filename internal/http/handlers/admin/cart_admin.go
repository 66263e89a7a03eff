package admin

import (
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCarts 购物车行列表
func (h *Handler) ListCarts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.CartService.List(repository.CartListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: handlershared.QueryUint(c, "customer_id"),
		ProductID:  handlershared.QueryUint(c, "product_id"),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetCart 购物车行详情
func (h *Handler) GetCart(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.CartService.Get(id, unscoped)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// CreateCart 代顾客加入购物车
func (h *Handler) CreateCart(c *gin.Context) {
	var req handlershared.CartRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	item, err := h.CartService.Add(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateCart 修改购物车行
func (h *Handler) UpdateCart(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.CartRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	item, err := h.CartService.Update(id, unscoped, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteCart 删除购物车行
func (h *Handler) DeleteCart(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CartService.Remove(id, unscoped); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
