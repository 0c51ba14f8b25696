package controller

import (
	"course_cert_backend/internal/playback"
	"course_cert_backend/internal/service"
	"course_cert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlaybackController struct {
	PlaybackService *service.PlaybackService
}

func NewPlaybackController(playbackService *service.PlaybackService) *PlaybackController {
	return &PlaybackController{PlaybackService: playbackService}
}

// @Summary 打开播放会话
// @Description 为视频创建受限播放会话，并恢复上次的播放位置
// @Tags 播放
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Param videoId path string true "视频ID"
// @Success 201 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/videos/{videoId}/sessions [post]
func (c *PlaybackController) OpenSession(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	view, err := c.PlaybackService.Open(ctx.Request.Context(), learnerID, ctx.Param("courseId"), ctx.Param("videoId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// @Summary 提交播放事件
// @Description 媒体/可见性事件经状态机处理，返回新状态和客户端需要执行的副作用
// @Tags 播放
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "会话ID"
// @Param body body playback.Event true "播放事件"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 400 {object} util.Response "无效事件"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "当前状态不接受该事件"
// @Router /api/sessions/{sessionId}/events [post]
func (c *PlaybackController) ApplyEvent(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	var ev playback.Event
	if err := ctx.ShouldBindJSON(&ev); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.PlaybackService.Apply(ctx.Request.Context(), learnerID, ctx.Param("sessionId"), ev)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 查询播放会话
// @Tags 播放
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Router /api/sessions/{sessionId} [get]
func (c *PlaybackController) GetSession(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	view, err := c.PlaybackService.Get(learnerID, ctx.Param("sessionId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 关闭播放会话
// @Tags 播放
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sessions/{sessionId} [delete]
func (c *PlaybackController) CloseSession(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	if err := c.PlaybackService.Close(learnerID, ctx.Param("sessionId")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
