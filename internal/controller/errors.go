package controller

import (
	"course_cert_backend/internal/playback"
	"course_cert_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 将领域错误映射为统一响应
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidID),
		errors.Is(err, util.ErrQuizIncomplete),
		errors.Is(err, util.ErrStudentNameRequired),
		errors.Is(err, playback.ErrInvalidEvent):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrVideoNotFound),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrCertificateMissing):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrVideoNotCompleted),
		errors.Is(err, util.ErrCourseNotCompleted),
		errors.Is(err, playback.ErrEventNotAllowed):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrAdUnavailable):
		ctx.Status(http.StatusNoContent)
	case errors.Is(err, util.ErrProgressUnavailable):
		util.Error(ctx, http.StatusServiceUnavailable, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func learnerOrAbort(ctx *gin.Context) (string, bool) {
	claims := util.GetLearnerFromContext(ctx)
	if claims == nil || claims.LearnerID() == "" {
		util.Unauthorized(ctx)
		return "", false
	}
	return claims.LearnerID(), true
}
