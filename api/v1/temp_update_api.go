package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/api/v1/request"
	"blogapi/internal/response"
	"blogapi/service"
)

type TempUpdateAPI struct {
	service *service.TempUpdateService
}

func NewTempUpdateAPI(s *service.TempUpdateService) *TempUpdateAPI {
	return &TempUpdateAPI{service: s}
}

// Create 为目标用户创建一条临时更新信息，目标用户下次被加载时生效
func (a *TempUpdateAPI) Create(c *gin.Context) {
	var req request.CreateTempUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "目标用户id、新值、创建者id为必填项")
		return
	}
	info, err := a.service.Enqueue(c.Request.Context(), req.UserID, req.Value, req.CreatorID, req.IsDelete)
	if err != nil {
		response.Msg(c, http.StatusInternalServerError, "设置失败")
		return
	}
	response.Data(c, http.StatusOK, "设置成功", info)
}
