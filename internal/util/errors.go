package util

import "errors"

var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrVideoNotFound       = errors.New("video not found")
	ErrVideoNotCompleted   = errors.New("video has not been watched to the end")
	ErrQuizIncomplete      = errors.New("every question must be answered before submitting")
	ErrCourseNotCompleted  = errors.New("course not completed")
	ErrStudentNameRequired = errors.New("student name is required")
	ErrCertificateMissing  = errors.New("certificate not generated")
	ErrSessionNotFound     = errors.New("playback session not found")
	ErrAdUnavailable       = errors.New("no ad available")
	ErrInvalidID           = errors.New("invalid identifier")
	ErrProgressUnavailable = errors.New("progress storage unavailable")
)
