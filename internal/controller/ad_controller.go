package controller

import (
	"course_cert_backend/internal/service"
	"course_cert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdController struct {
	AdService *service.AdService
}

func NewAdController(adService *service.AdService) *AdController {
	return &AdController{AdService: adService}
}

// @Summary 片头广告
// @Description 在加载超时时间内随机选择一个有效广告；无可用广告时返回 204，客户端直接播放课程视频
// @Tags 广告
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.AdPlacement}
// @Success 204 "无可用广告"
// @Router /api/ads/preroll [get]
func (c *AdController) Preroll(ctx *gin.Context) {
	placement, err := c.AdService.PickPreroll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, placement)
}
