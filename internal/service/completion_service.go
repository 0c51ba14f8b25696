package service

import (
	"context"
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/util"
	"course_cert_backend/pkg/logger"
	"course_cert_backend/pkg/monitoring"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// evaluateCompletion 完成门：课程一旦完成就不再回退。
// 返回 true 表示本次调用首次把课程标记为完成。
func evaluateCompletion(c *model.CourseProgress, now time.Time) bool {
	if c.CourseCompleted || !c.MeetsCompletion() {
		return false
	}
	c.CourseCompleted = true
	completedAt := now
	c.CompletionDate = &completedAt
	return true
}

// CertificateIssued is called exactly once per (learner, course), after the
// certificate has been persisted.
type CertificateIssued func(learnerID string, data *model.CertificateData)

type CompletionService struct {
	Progress *ProgressService
	OnIssued CertificateIssued
}

func NewCompletionService(progress *ProgressService) *CompletionService {
	return &CompletionService{Progress: progress}
}

// Evaluate re-runs the completion gate against the stored course progress and
// reports whether the course is (stickily) completed.
func (s *CompletionService) Evaluate(ctx context.Context, learnerID, courseID string) bool {
	if s.Progress.GetCourseProgress(ctx, learnerID, courseID) == nil {
		return false
	}
	course, err := s.Progress.mutate(ctx, "evaluate_completion", learnerID, courseID, func(*model.CourseProgress, time.Time) error {
		return nil
	})
	return err == nil && course.CourseCompleted
}

// IssueCertificate records the student name. The first successful call
// generates the certificate; later calls only replace the stored name.
func (s *CompletionService) IssueCertificate(ctx context.Context, learnerID, courseID, studentName string) (*model.CertificateData, error) {
	name := strings.TrimSpace(studentName)
	if name == "" {
		return nil, util.ErrStudentNameRequired
	}

	issued := false
	course, err := s.Progress.mutate(ctx, "issue_certificate", learnerID, courseID, func(c *model.CourseProgress, now time.Time) error {
		// 完成标记由 mutate 在 fn 之后写入，这里只校验谓词
		c.RecomputeCompletedVideos()
		if !c.CourseCompleted && !c.MeetsCompletion() {
			return util.ErrCourseNotCompleted
		}

		c.StudentName = name
		if !c.CertificateGenerated {
			c.CertificateGenerated = true
			c.CertificateID = certificateID(courseID, now)
			issued = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	data := certificateData(course)
	if issued {
		monitoring.CertificatesIssued.Inc()
		logger.Log.Info("Certificate issued",
			zap.String("learner", learnerID),
			zap.String("course", courseID),
			zap.String("certificate", data.CertificateID))
		if s.OnIssued != nil {
			s.OnIssued(learnerID, data)
		}
	}
	return data, nil
}

// GetCertificateData returns ErrCertificateMissing until a certificate exists.
func (s *CompletionService) GetCertificateData(ctx context.Context, learnerID, courseID string) (*model.CertificateData, error) {
	course := s.Progress.GetCourseProgress(ctx, learnerID, courseID)
	if course == nil || !course.CertificateGenerated {
		return nil, util.ErrCertificateMissing
	}
	return certificateData(course), nil
}

func certificateID(courseID string, now time.Time) string {
	return fmt.Sprintf("CERT-%s-%d", strings.ToUpper(courseID), now.UnixMilli())
}

func certificateData(c *model.CourseProgress) *model.CertificateData {
	return &model.CertificateData{
		CourseID:             c.CourseID,
		CertificateID:        c.CertificateID,
		CompletionDate:       c.CompletionDate,
		CertificateGenerated: c.CertificateGenerated,
		CompletedVideos:      c.CompletedVideos,
		TotalVideos:          c.TotalVideos,
		StudentName:          c.StudentName,
	}
}
