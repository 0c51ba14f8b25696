package controller

import (
	"course_cert_backend/internal/service"
	"course_cert_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CompletionService *service.CompletionService
}

func NewCertificateController(completionService *service.CompletionService) *CertificateController {
	return &CertificateController{CompletionService: completionService}
}

// CertificateRequest swagger:model CertificateRequest
type CertificateRequest struct {
	StudentName string `json:"studentName"`
}

// @Summary 生成证书
// @Description 课程完成后提交姓名生成证书；重复提交只更新姓名
// @Tags 证书
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Param body body CertificateRequest true "学员姓名"
// @Success 200 {object} util.Response{data=model.CertificateData}
// @Failure 400 {object} util.Response "姓名为空"
// @Failure 409 {object} util.Response "课程未完成"
// @Failure 503 {object} util.Response "进度存储不可用"
// @Router /api/courses/{courseId}/certificate [post]
func (c *CertificateController) Issue(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	var req CertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	courseID := ctx.Param("courseId")
	if !service.ValidID(courseID) {
		respondError(ctx, util.ErrInvalidID)
		return
	}

	data, err := c.CompletionService.IssueCertificate(ctx.Request.Context(), learnerID, courseID, req.StudentName)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

// @Summary 证书数据
// @Tags 证书
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程ID"
// @Success 200 {object} util.Response{data=model.CertificateData}
// @Failure 404 {object} util.Response "尚未生成证书"
// @Router /api/courses/{courseId}/certificate [get]
func (c *CertificateController) Get(ctx *gin.Context) {
	learnerID, ok := learnerOrAbort(ctx)
	if !ok {
		return
	}

	data, err := c.CompletionService.GetCertificateData(ctx.Request.Context(), learnerID, ctx.Param("courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, data)
}
