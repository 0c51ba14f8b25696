package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"course_cert_backend/internal/model"
	"course_cert_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource serves content from memory.
type mapSource struct {
	files map[string][]byte
	err   error
}

func (m *mapSource) Read(_ context.Context, name string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, name)
	}
	return data, nil
}

func mustJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func testCourse() model.Course {
	return model.Course{
		ID:         "react-basics",
		Title:      "React Basics",
		Instructor: "Jane Doe",
		Level:      model.Beginner,
		Videos: []model.Video{
			{ID: "v1", Title: "Intro", VideoURL: "/videos/intro.mp4", Duration: 125, Order: 1, Quiz: twoQuestionQuiz()},
			{ID: "v2", Title: "State", VideoURL: "/videos/state.mp4", Duration: 300, Order: 2, Quiz: twoQuestionQuiz()},
			{ID: "v3", Title: "Effects", VideoURL: "/videos/effects.mp4", Duration: 61, Order: 3, Quiz: twoQuestionQuiz()},
		},
	}
}

func testCourseSource() *mapSource {
	return &mapSource{files: map[string][]byte{
		"courses/index.json": mustJSON(model.CourseCatalog{Courses: []model.CourseCatalogItem{
			{ID: "react-basics", Title: "React Basics", VideoCount: 3, Level: model.Beginner},
		}}),
		"courses/react-basics.json": mustJSON(testCourse()),
		"courses/broken.json":       []byte("{not json"),
		"ads/ads.json": mustJSON(model.AdsData{Ads: []model.Ad{
			{ID: "ad-1", Title: "Active", Active: true, SkipDelay: 3},
			{ID: "ad-2", Title: "Retired", Active: false},
		}}),
	}}
}

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(testCourseSource(), nil)

	catalog := svc.LoadCatalog(ctx)
	require.Len(t, catalog.Courses, 1)
	assert.Equal(t, "react-basics", catalog.Courses[0].ID)
}

func TestLoadCatalog_FailsSoft(t *testing.T) {
	ctx := context.Background()

	empty := NewCourseService(&mapSource{files: map[string][]byte{}}, nil).LoadCatalog(ctx)
	assert.NotNil(t, empty.Courses)
	assert.Empty(t, empty.Courses)

	broken := NewCourseService(&mapSource{err: errors.New("bucket offline")}, nil).LoadCatalog(ctx)
	assert.Empty(t, broken.Courses)

	corrupt := NewCourseService(&mapSource{files: map[string][]byte{"courses/index.json": []byte("[")}}, nil).LoadCatalog(ctx)
	assert.Empty(t, corrupt.Courses)
}

func TestLoadCourse(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(testCourseSource(), nil)

	course, err := svc.LoadCourse(ctx, "react-basics")
	require.NoError(t, err)
	assert.Len(t, course.Videos, 3)
	assert.Equal(t, "v2", course.NextVideo("v1").ID)
	assert.Nil(t, course.NextVideo("v3"))
	assert.Equal(t, "v2", course.PreviousVideo("v3").ID)
	assert.Nil(t, course.PreviousVideo("v1"))

	_, err = svc.LoadCourse(ctx, "missing")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, err = svc.LoadCourse(ctx, "../secrets")
	assert.ErrorIs(t, err, util.ErrInvalidID)

	_, err = svc.LoadCourse(ctx, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, util.ErrCourseNotFound)
}

func TestGetVideo(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(testCourseSource(), nil)

	video, err := svc.GetVideo(ctx, "react-basics", "v2")
	require.NoError(t, err)
	assert.Equal(t, "State", video.Title)

	_, err = svc.GetVideo(ctx, "react-basics", "v9")
	assert.ErrorIs(t, err, util.ErrVideoNotFound)

	_, err = svc.GetVideo(ctx, "react-basics", "a/b")
	assert.ErrorIs(t, err, util.ErrInvalidID)
}

func TestOpenCourse_SetsTotalVideos(t *testing.T) {
	ctx := context.Background()
	progress, _ := newTestProgress()
	svc := NewCourseService(testCourseSource(), progress)

	course, cp, err := svc.OpenCourse(ctx, "u1", "react-basics")
	require.NoError(t, err)
	assert.Equal(t, "react-basics", course.ID)
	assert.Equal(t, 3, cp.TotalVideos)

	_, _, err = svc.OpenCourse(ctx, "u1", "missing")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
	assert.Nil(t, progress.GetCourseProgress(ctx, "u1", "missing"))
}

func TestOutline(t *testing.T) {
	course := testCourse()

	out := Outline(&course, nil)
	assert.Equal(t, 3, out.TotalVideos)
	assert.Zero(t, out.Percent)
	for _, v := range out.Videos {
		assert.Equal(t, VideoNotStarted, v.Status)
	}
	assert.Equal(t, "2:05", out.Videos[0].DurationLabel)
	assert.Equal(t, "1:01", out.Videos[2].DurationLabel)

	progress := model.NewCourseProgress("react-basics")
	progress.VideosProgress["v1"] = model.VideoProgress{Completed: true, QuizCompleted: true}
	progress.VideosProgress["v2"] = model.VideoProgress{Completed: true}
	progress.VideosProgress["v3"] = model.VideoProgress{CurrentTime: 10, MaxWatchedTime: 10}

	out = Outline(&course, progress)
	assert.Equal(t, VideoCompleted, out.Videos[0].Status)
	assert.Equal(t, VideoQuizPending, out.Videos[1].Status)
	assert.Equal(t, VideoInProgress, out.Videos[2].Status)
	assert.Equal(t, 1, out.CompletedVideos)
	assert.InDelta(t, 33.33, out.Percent, 0.01)
}

func TestLocalContentSource(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "courses"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "courses", "index.json"), []byte(`{"courses":[]}`), 0644))

	src := &LocalContentSource{Root: root}
	data, err := src.Read(context.Background(), "courses/index.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"courses":[]}`, string(data))

	_, err = src.Read(context.Background(), "courses/none.json")
	assert.ErrorIs(t, err, ErrContentNotFound)
}
