package controller

import (
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/service"
	"course_cert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// QuizSubmitRequest questionId -> 选项下标
// swagger:model QuizSubmitRequest
type QuizSubmitRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

// QuizSubmitResponse swagger:model QuizSubmitResponse
type QuizSubmitResponse struct {
	Result   *model.QuizResult     `json:"result"`
	Progress *model.CourseProgress `json:"progress"`
}

// @Summary 提交测验
// @Description 所有题目作答后才能提交；评分结果写入视频进度
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Param videoId path string true "视频ID"
// @Param body body QuizSubmitRequest true "作答"
// @Success 200 {object} util.Response{data=QuizSubmitResponse}
// @Failure 400 {object} util.Response "存在未作答题目"
// @Failure 409 {object} util.Response "视频尚未看完"
// @Router /api/courses/{courseId}/videos/{videoId}/quiz [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	var req QuizSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, progress, err := c.QuizService.Submit(ctx.Request.Context(), learnerID, ctx.Param("courseId"), ctx.Param("videoId"), req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, QuizSubmitResponse{Result: result, Progress: progress})
}
