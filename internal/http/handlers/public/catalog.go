package public

import (
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.CategoryService.List(repository.CategoryListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// ListProducts 商品列表，支持分类、关键字与仅有货过滤
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   handlershared.QueryUint(c, "category_id"),
		SellerID:     handlershared.QueryUint(c, "seller_id"),
		Search:       strings.TrimSpace(c.Query("search")),
		InStockOnly:  c.Query("in_stock") == "true",
		WithCategory: true,
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetProduct 商品详情（走商品缓存）
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetPublic(c.Request.Context(), id)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// ListProductReviews 商品评价列表与评分汇总
func (h *Handler) ListProductReviews(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.ProductService.GetPublic(c.Request.Context(), id); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	reviews, total, rating, err := h.ReviewService.ListByProduct(id, page, pageSize)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{
		"items":  reviews,
		"rating": rating,
	}, response.BuildPagination(page, pageSize, total))
}
