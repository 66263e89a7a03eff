package shared

import (
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/service"

	"github.com/gin-gonic/gin"
)

// HandleProductImageUpload 处理 multipart 表单字段 file 的商品图片上传
func HandleProductImageUpload(c *gin.Context, uploads *service.UploadService) {
	if uploads == nil {
		RespondError(c, response.CodeInternal, "error.upload_storage_invalid", nil)
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	result, err := uploads.SaveProductImage(file)
	if err != nil {
		RespondMappedError(c, err, ServiceErrorRules, response.CodeInternal, "error.upload_failed")
		return
	}
	RequestLog(c).Infow("product_image_uploaded", "key", result.Key, "size", result.Size)
	response.Created(c, result)
}
