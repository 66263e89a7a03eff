package seller

import (
	"strconv"
	"strings"

	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/provider"
	"github.com/cart-it/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 卖家侧接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建卖家处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func getSellerID(c *gin.Context) (uint, bool) {
	return handlershared.GetPrincipalID(c)
}

// GetMe 当前卖家资料
func (h *Handler) GetMe(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	seller, err := h.SellerService.Get(sellerID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, seller)
}

// UpdateMe 更新当前卖家资料
func (h *Handler) UpdateMe(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	var req handlershared.SellerRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	seller, err := h.SellerService.Update(sellerID, req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, seller)
}

// GetDashboard 卖家经营概览
func (h *Handler) GetDashboard(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}
	days, _ := strconv.Atoi(strings.TrimSpace(c.Query("days")))
	overview, err := h.DashboardService.GetOverview(c.Request.Context(), service.DashboardQueryInput{
		SellerID:     sellerID,
		Days:         days,
		ForceRefresh: c.Query("refresh") == "true",
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, overview)
}

// UploadProductImage 上传商品图片
func (h *Handler) UploadProductImage(c *gin.Context) {
	handlershared.HandleProductImageUpload(c, h.UploadService)
}
