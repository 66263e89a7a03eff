package customer

import (
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListReviews 当前顾客发表的评价
func (h *Handler) ListReviews(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.ReviewService.List(repository.ReviewListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
		ProductID:  handlershared.QueryUint(c, "product_id"),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// CreateReview 发表评价
func (h *Handler) CreateReview(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req handlershared.ReviewRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	input := req.ToInput()
	input.CustomerID = customerID
	review, err := h.ReviewService.Create(input)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, review)
}

// UpdateReview 修改本人评价
func (h *Handler) UpdateReview(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.ReviewRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	input := req.ToInput()
	input.CustomerID = 0
	review, err := h.ReviewService.Update(id, customerID, input)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, review)
}

// DeleteReview 删除本人评价
func (h *Handler) DeleteReview(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(id, customerID); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
