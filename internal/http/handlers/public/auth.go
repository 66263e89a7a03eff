package public

import (
	"github.com/cart-it/internal/constants"
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email          string                              `json:"email" binding:"required"`
	Password       string                              `json:"password" binding:"required"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// RefreshRequest 刷新/登出请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RegisterCustomerRequest 顾客注册请求
type RegisterCustomerRequest struct {
	handlershared.CustomerRequest
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// RegisterSellerRequest 卖家注册请求
type RegisterSellerRequest struct {
	handlershared.SellerRequest
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// Login 统一登录入口，依次匹配管理员、顾客、卖家
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneLogin, req.CaptchaPayload) {
		return
	}
	pair, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, pair)
}

// Refresh 轮换刷新令牌并签发新的访问令牌
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	pair, err := h.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Success(c, pair)
}

// Logout 吊销刷新令牌
func (h *Handler) Logout(c *gin.Context) {
	var req RefreshRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	if err := h.AuthService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// RegisterCustomer 顾客注册
func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneRegister, req.CaptchaPayload) {
		return
	}
	customer, err := h.RegistrationService.RegisterCustomer(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, customer)
}

// RegisterSeller 卖家注册
func (h *Handler) RegisterSeller(c *gin.Context) {
	var req RegisterSellerRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneRegister, req.CaptchaPayload) {
		return
	}
	seller, err := h.RegistrationService.RegisterSeller(req.ToInput())
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, seller)
}
