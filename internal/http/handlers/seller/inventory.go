package seller

import (
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListInventory 本店库存记录，low_stock=true 仅返回低库存
func (h *Handler) ListInventory(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.InventoryService.List(repository.InventoryListFilter{
		Page:         page,
		PageSize:     pageSize,
		SellerID:     sellerID,
		ProductID:    handlershared.QueryUint(c, "product_id"),
		LowStockOnly: c.Query("low_stock") == "true",
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetInventory 库存记录详情
func (h *Handler) GetInventory(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.InventoryService.Get(id, sellerID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// CreateInventory 新建库存记录
func (h *Handler) CreateInventory(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	var req handlershared.InventoryRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	item, err := h.InventoryService.Create(sellerID, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateInventory 修改库存记录
func (h *Handler) UpdateInventory(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.InventoryRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	item, err := h.InventoryService.Update(id, sellerID, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteInventory 删除库存记录
func (h *Handler) DeleteInventory(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.InventoryService.Delete(id, sellerID); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
