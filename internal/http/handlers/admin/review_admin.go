package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListReviews 评价列表
func (h *Handler) ListReviews(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	minRating, _ := strconv.Atoi(strings.TrimSpace(c.Query("min_rating")))
	items, total, err := h.ReviewService.List(repository.ReviewListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: handlershared.QueryUint(c, "customer_id"),
		ProductID:  handlershared.QueryUint(c, "product_id"),
		MinRating:  minRating,
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetReview 评价详情
func (h *Handler) GetReview(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	review, err := h.ReviewService.Get(id, unscoped)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, review)
}

// CreateReview 代顾客发表评价
func (h *Handler) CreateReview(c *gin.Context) {
	var req handlershared.ReviewRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	review, err := h.ReviewService.Create(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, review)
}

// UpdateReview 更新评价
func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req handlershared.ReviewRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	review, err := h.ReviewService.Update(id, unscoped, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, review)
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(id, unscoped); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
