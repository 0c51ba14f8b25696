package service

import (
	"context"
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/playback"
	"course_cert_backend/internal/util"
	"course_cert_backend/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const (
	catalogIndex = "courses/index.json"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,127}$`)

// ValidID rejects identifiers that could escape the content root.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// VideoStatus 课程大纲中单个视频的状态
type VideoStatus string

const (
	VideoNotStarted  VideoStatus = "not_started"
	VideoInProgress  VideoStatus = "in_progress"
	VideoQuizPending VideoStatus = "quiz_pending"
	VideoCompleted   VideoStatus = "completed"
)

type VideoOutline struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Order         int         `json:"order"`
	DurationLabel string      `json:"durationLabel"`
	Status        VideoStatus `json:"status"`
}

type CourseOutline struct {
	CompletedVideos int            `json:"completedVideos"`
	TotalVideos     int            `json:"totalVideos"`
	Percent         float64        `json:"percent"`
	Videos          []VideoOutline `json:"videos"`
}

type CourseService struct {
	Source         ContentSource
	Progress       *ProgressService
	ProbeDurations bool
	MediaRoot      string
}

func NewCourseService(source ContentSource, progress *ProgressService) *CourseService {
	return &CourseService{Source: source, Progress: progress}
}

// LoadCatalog never fails: an unreadable index yields an empty catalog.
func (s *CourseService) LoadCatalog(ctx context.Context) *model.CourseCatalog {
	catalog := &model.CourseCatalog{Courses: []model.CourseCatalogItem{}}

	data, err := s.Source.Read(ctx, catalogIndex)
	if err != nil {
		logger.Log.Warn("Failed to load course catalog", zap.Error(err))
		return catalog
	}
	if err := json.Unmarshal(data, catalog); err != nil {
		logger.Log.Warn("Corrupt course catalog", zap.Error(err))
		return &model.CourseCatalog{Courses: []model.CourseCatalogItem{}}
	}
	if catalog.Courses == nil {
		catalog.Courses = []model.CourseCatalogItem{}
	}
	return catalog
}

func (s *CourseService) LoadCourse(ctx context.Context, courseID string) (*model.Course, error) {
	if !ValidID(courseID) {
		return nil, util.ErrInvalidID
	}

	data, err := s.Source.Read(ctx, fmt.Sprintf("courses/%s.json", courseID))
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, fmt.Errorf("read course %s: %w", courseID, err)
	}

	var course model.Course
	if err := json.Unmarshal(data, &course); err != nil {
		return nil, fmt.Errorf("decode course %s: %w", courseID, err)
	}
	if course.ID == "" {
		course.ID = courseID
	}
	if s.ProbeDurations {
		s.fillDurations(&course)
	}
	return &course, nil
}

// fillDurations probes local media files for videos whose definition lacks
// a duration. Probe failures leave the duration at zero.
func (s *CourseService) fillDurations(course *model.Course) {
	for i := range course.Videos {
		v := &course.Videos[i]
		if v.Duration > 0 || v.VideoURL == "" || strings.Contains(v.VideoURL, "://") {
			continue
		}
		local := filepath.Join(s.MediaRoot, filepath.FromSlash(strings.TrimPrefix(v.VideoURL, "/")))
		if !util.IsVideoFile(local) {
			continue
		}
		info, err := util.GetVideoInfo(local)
		if err != nil {
			logger.Log.Debug("Duration probe failed", zap.String("video", v.ID), zap.Error(err))
			continue
		}
		v.Duration = info.Duration
	}
}

func (s *CourseService) GetVideo(ctx context.Context, courseID, videoID string) (*model.Video, error) {
	if !ValidID(videoID) {
		return nil, util.ErrInvalidID
	}
	course, err := s.LoadCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	video := course.Video(videoID)
	if video == nil {
		return nil, util.ErrVideoNotFound
	}
	return video, nil
}

// OpenCourse loads the course definition for a learner and records its size
// with the progress engine, which also re-runs the completion gate.
func (s *CourseService) OpenCourse(ctx context.Context, learnerID, courseID string) (*model.Course, *model.CourseProgress, error) {
	course, err := s.LoadCourse(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	progress := s.Progress.SetTotalVideos(ctx, learnerID, course.ID, len(course.Videos))
	return course, progress, nil
}

// Outline derives the per-video status list shown next to the player.
func Outline(course *model.Course, progress *model.CourseProgress) CourseOutline {
	out := CourseOutline{
		TotalVideos: len(course.Videos),
		Videos:      make([]VideoOutline, 0, len(course.Videos)),
	}

	for _, v := range course.Videos {
		status := VideoNotStarted
		if progress != nil {
			if vp, ok := progress.VideosProgress[v.ID]; ok {
				switch {
				case vp.Finished():
					status = VideoCompleted
					out.CompletedVideos++
				case vp.Completed:
					status = VideoQuizPending
				default:
					status = VideoInProgress
				}
			}
		}
		out.Videos = append(out.Videos, VideoOutline{
			ID:            v.ID,
			Title:         v.Title,
			Order:         v.Order,
			DurationLabel: playback.FormatClock(v.Duration),
			Status:        status,
		})
	}

	if out.TotalVideos > 0 {
		out.Percent = float64(out.CompletedVideos) / float64(out.TotalVideos) * 100
	}
	return out
}
