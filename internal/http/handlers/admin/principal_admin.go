package admin

import (
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCustomers 顾客列表
func (h *Handler) ListCustomers(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.CustomerService.List(repository.CustomerListFilter{
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

// GetCustomer 顾客详情
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := h.CustomerService.Get(id)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

// CreateCustomer 创建顾客
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req handlershared.CustomerRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	customer, err := h.CustomerService.Create(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, customer)
}

// UpdateCustomer 更新顾客
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.CustomerRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	customer, err := h.CustomerService.Update(id, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

// DeleteCustomer 删除顾客及其购物车、订单、支付与评价
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CustomerService.Delete(id); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListSellers 卖家列表
func (h *Handler) ListSellers(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.SellerService.List(repository.SellerListFilter{
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

// GetSeller 卖家详情
func (h *Handler) GetSeller(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	seller, err := h.SellerService.Get(id)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, seller)
}

// CreateSeller 创建卖家
func (h *Handler) CreateSeller(c *gin.Context) {
	var req handlershared.SellerRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	seller, err := h.SellerService.Create(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, seller)
}

// UpdateSeller 更新卖家
func (h *Handler) UpdateSeller(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.SellerRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	seller, err := h.SellerService.Update(id, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, seller)
}

// DeleteSeller 删除卖家
func (h *Handler) DeleteSeller(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.SellerService.Delete(id); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListAdministrators 管理员列表
func (h *Handler) ListAdministrators(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.AdministratorService.List(repository.AdministratorListFilter{
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

// GetAdministrator 管理员详情
func (h *Handler) GetAdministrator(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	admin, err := h.AdministratorService.Get(id)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, admin)
}

// CreateAdministrator 创建管理员
func (h *Handler) CreateAdministrator(c *gin.Context) {
	var req handlershared.AdministratorRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	admin, err := h.AdministratorService.Create(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, admin)
}

// UpdateAdministrator 更新管理员
func (h *Handler) UpdateAdministrator(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.AdministratorRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	admin, err := h.AdministratorService.Update(id, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, admin)
}

// DeleteAdministrator 删除管理员，最后一个管理员不可删除
func (h *Handler) DeleteAdministrator(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AdministratorService.Delete(id); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
