package seller

import (
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts 本店商品
func (h *Handler) ListProducts(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		SellerID:     sellerID,
		CategoryID:   handlershared.QueryUint(c, "category_id"),
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetProduct 本店商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id, sellerID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 上架商品，归属固定为当前卖家
func (h *Handler) CreateProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	var req handlershared.ProductRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	input := req.ToInput()
	input.SellerID = sellerID
	product, err := h.ProductService.Create(input)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct 修改本店商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.ProductRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	input := req.ToInput()
	input.SellerID = 0
	product, err := h.ProductService.Update(id, sellerID, input)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 下架本店商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id, sellerID); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
