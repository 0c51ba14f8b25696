package controller

import (
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/service"
	"course_cert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	CourseService   *service.CourseService
}

func NewProgressController(progressService *service.ProgressService, courseService *service.CourseService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		CourseService:   courseService,
	}
}

// CourseProgressResponse 课程进度，首次访问时 progress 为 null
// swagger:model CourseProgressResponse
type CourseProgressResponse struct {
	Progress        *model.CourseProgress `json:"progress"`
	CourseCompleted bool                  `json:"courseCompleted"`
}

// @Summary 课程进度
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Success 200 {object} util.Response{data=CourseProgressResponse}
// @Router /api/courses/{courseId}/progress [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}
	courseID := ctx.Param("courseId")
	if !service.ValidID(courseID) {
		respondError(ctx, util.ErrInvalidID)
		return
	}

	progress := c.ProgressService.GetCourseProgress(ctx.Request.Context(), learnerID, courseID)
	util.Success(ctx, CourseProgressResponse{
		Progress:        progress,
		CourseCompleted: progress != nil && progress.MeetsCompletion(),
	})
}

// @Summary 视频进度
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Param videoId path string true "视频ID"
// @Success 200 {object} util.Response{data=model.VideoProgress}
// @Router /api/courses/{courseId}/videos/{videoId}/progress [get]
func (c *ProgressController) GetVideoProgress(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}
	courseID, videoID := ctx.Param("courseId"), ctx.Param("videoId")
	if !service.ValidID(courseID) || !service.ValidID(videoID) {
		respondError(ctx, util.ErrInvalidID)
		return
	}

	util.Success(ctx, c.ProgressService.GetVideoProgress(ctx.Request.Context(), learnerID, courseID, videoID))
}

// @Summary 更新视频进度
// @Description 合并部分字段到视频进度，completedVideos 由服务端重新计算
// @Tags 进度
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Param videoId path string true "视频ID"
// @Param body body model.VideoProgressUpdate true "部分进度"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/videos/{videoId}/progress [patch]
func (c *ProgressController) UpdateVideoProgress(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	var req model.VideoProgressUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.IsEmpty() {
		util.BadRequest(ctx, "no progress fields provided")
		return
	}

	courseID, videoID := ctx.Param("courseId"), ctx.Param("videoId")
	if _, err := c.CourseService.GetVideo(ctx.Request.Context(), courseID, videoID); err != nil {
		respondError(ctx, err)
		return
	}

	// 测验分数只能随 quizCompleted 一起写入
	if req.ScoreWithoutQuiz(c.ProgressService.GetVideoProgress(ctx.Request.Context(), learnerID, courseID, videoID)) {
		util.BadRequest(ctx, "quizScore requires quizCompleted")
		return
	}

	util.Success(ctx, c.ProgressService.UpdateVideoProgress(ctx.Request.Context(), learnerID, courseID, videoID, req))
}
