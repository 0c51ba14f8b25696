package controller

import (
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/service"
	"course_cert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// CourseDetail 课程详情及当前学习者的进度
// swagger:model CourseDetail
type CourseDetail struct {
	Course   *model.Course         `json:"course"`
	Progress *model.CourseProgress `json:"progress"`
	Outline  service.CourseOutline `json:"outline"`
}

// @Summary 课程目录
// @Description 获取全部课程，目录读取失败时返回空列表
// @Tags 课程
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.CourseCatalog}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	util.Success(ctx, c.CourseService.LoadCatalog(ctx.Request.Context()))
}

// @Summary 课程详情
// @Description 加载课程定义，记录视频总数并返回学习者进度与大纲
// @Tags 课程
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Success 200 {object} util.Response{data=CourseDetail}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	course, progress, err := c.CourseService.OpenCourse(ctx.Request.Context(), learnerID, ctx.Param("courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, CourseDetail{
		Course:   course,
		Progress: progress,
		Outline:  service.Outline(course, progress),
	})
}

// VideoDetail 单个视频及其前后视频
// swagger:model VideoDetail
type VideoDetail struct {
	Video    *model.Video         `json:"video"`
	Previous *model.Video         `json:"previous,omitempty"`
	Next     *model.Video         `json:"next,omitempty"`
	Progress *model.VideoProgress `json:"progress,omitempty"`
}

// @Summary 视频详情
// @Description 获取视频定义、上一个/下一个视频以及该视频的进度
// @Tags 课程
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Param videoId path string true "视频ID"
// @Success 200 {object} util.Response{data=VideoDetail}
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/videos/{videoId} [get]
func (c *CourseController) GetVideo(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	courseID, videoID := ctx.Param("courseId"), ctx.Param("videoId")
	course, err := c.CourseService.LoadCourse(ctx.Request.Context(), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	video := course.Video(videoID)
	if video == nil {
		respondError(ctx, util.ErrVideoNotFound)
		return
	}

	util.Success(ctx, VideoDetail{
		Video:    video,
		Previous: course.PreviousVideo(videoID),
		Next:     course.NextVideo(videoID),
		Progress: c.CourseService.Progress.GetVideoProgress(ctx.Request.Context(), learnerID, course.ID, videoID),
	})
}
