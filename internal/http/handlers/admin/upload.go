package admin

import (
	"github.com/qamees-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadFile 上传图片，scene 取 product/banner/design
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_file_missing", nil)
		return
	}
	result, err := h.UploadService.SaveFile(c.Request.Context(), file, c.PostForm("scene"))
	if err != nil {
		uploadErrors.Respond(c, err, "error.upload_failed")
		return
	}
	requestLog(c).Infow("admin_upload_saved", "key", result.Key, "size", result.Size)
	response.Success(c, result)
}
