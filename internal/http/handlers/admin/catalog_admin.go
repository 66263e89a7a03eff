package admin

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

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req handlershared.CategoryRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.Create(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.CategoryRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.Update(id, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类，仍有商品引用时拒绝
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListProducts 商品列表
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

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id, unscoped)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品，seller_id 由请求指定
func (h *Handler) CreateProduct(c *gin.Context) {
	var req handlershared.ProductRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.Create(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.ProductRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.Update(id, unscoped, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id, unscoped); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// UploadProductImage 上传商品图片
func (h *Handler) UploadProductImage(c *gin.Context) {
	handlershared.HandleProductImageUpload(c, h.UploadService)
}
