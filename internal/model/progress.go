package model

import "time"

// VideoProgress 单个视频的观看进度
// swagger:model VideoProgress
type VideoProgress struct {
	VideoID        string    `json:"videoId"`
	CourseID       string    `json:"courseId"`
	CurrentTime    float64   `json:"currentTime"`
	MaxWatchedTime float64   `json:"maxWatchedTime"`
	Completed      bool      `json:"completed"`
	QuizCompleted  bool      `json:"quizCompleted"`
	QuizScore      *float64  `json:"quizScore,omitempty"`
	LastWatched    time.Time `json:"lastWatched"`
}

// Finished reports whether both the video and its quiz are done.
func (v VideoProgress) Finished() bool {
	return v.Completed && v.QuizCompleted
}

// VideoProgressUpdate is a partial VideoProgress; nil fields are left untouched.
type VideoProgressUpdate struct {
	CurrentTime    *float64 `json:"currentTime,omitempty"`
	MaxWatchedTime *float64 `json:"maxWatchedTime,omitempty"`
	Completed      *bool    `json:"completed,omitempty"`
	QuizCompleted  *bool    `json:"quizCompleted,omitempty"`
	QuizScore      *float64 `json:"quizScore,omitempty" binding:"omitempty,min=0,max=100"`
}

func (u VideoProgressUpdate) IsEmpty() bool {
	return u.CurrentTime == nil && u.MaxWatchedTime == nil && u.Completed == nil &&
		u.QuizCompleted == nil && u.QuizScore == nil
}

// ApplyTo merges the update into v. Positions are floored at zero.
// ScoreWithoutQuiz reports a quizScore sent for a quiz that is neither being
// completed by this update nor already completed.
func (u VideoProgressUpdate) ScoreWithoutQuiz(stored *VideoProgress) bool {
	if u.QuizScore == nil || (u.QuizCompleted != nil && *u.QuizCompleted) {
		return false
	}
	return stored == nil || !stored.QuizCompleted
}

func (u VideoProgressUpdate) ApplyTo(v *VideoProgress) {
	if u.CurrentTime != nil {
		v.CurrentTime = nonNegative(*u.CurrentTime)
	}
	if u.MaxWatchedTime != nil {
		v.MaxWatchedTime = nonNegative(*u.MaxWatchedTime)
	}
	if u.Completed != nil {
		v.Completed = *u.Completed
	}
	if u.QuizCompleted != nil {
		v.QuizCompleted = *u.QuizCompleted
	}
	if u.QuizScore != nil {
		score := *u.QuizScore
		v.QuizScore = &score
	}
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

// CourseProgress 课程维度的进度，CompletedVideos 只能通过 RecomputeCompletedVideos 得出
// swagger:model CourseProgress
type CourseProgress struct {
	CourseID             string                   `json:"courseId"`
	VideosProgress       map[string]VideoProgress `json:"videosProgress"`
	CompletedVideos      int                      `json:"completedVideos"`
	TotalVideos          int                      `json:"totalVideos"`
	LastAccessedVideoID  string                   `json:"lastAccessedVideoId,omitempty"`
	CourseCompleted      bool                     `json:"courseCompleted,omitempty"`
	CompletionDate       *time.Time               `json:"completionDate,omitempty"`
	CertificateGenerated bool                     `json:"certificateGenerated,omitempty"`
	CertificateID        string                   `json:"certificateId,omitempty"`
	StudentName          string                   `json:"studentName,omitempty"`
}

func NewCourseProgress(courseID string) *CourseProgress {
	return &CourseProgress{
		CourseID:       courseID,
		VideosProgress: make(map[string]VideoProgress),
	}
}

// RecomputeCompletedVideos derives CompletedVideos from VideosProgress.
func (c *CourseProgress) RecomputeCompletedVideos() {
	count := 0
	for _, v := range c.VideosProgress {
		if v.Finished() {
			count++
		}
	}
	c.CompletedVideos = count
}

// MeetsCompletion is the course completion predicate.
func (c *CourseProgress) MeetsCompletion() bool {
	return c.TotalVideos > 0 && c.CompletedVideos == c.TotalVideos
}

func (c *CourseProgress) Clone() *CourseProgress {
	if c == nil {
		return nil
	}
	out := *c
	out.VideosProgress = make(map[string]VideoProgress, len(c.VideosProgress))
	for id, v := range c.VideosProgress {
		if v.QuizScore != nil {
			score := *v.QuizScore
			v.QuizScore = &score
		}
		out.VideosProgress[id] = v
	}
	if c.CompletionDate != nil {
		d := *c.CompletionDate
		out.CompletionDate = &d
	}
	return &out
}

// UserProgress 即"进度文档"：某个学习者全部课程的进度
// swagger:model UserProgress
type UserProgress struct {
	Courses     map[string]*CourseProgress `json:"courses"`
	LastUpdated time.Time                  `json:"lastUpdated"`
}

func NewUserProgress() *UserProgress {
	return &UserProgress{Courses: make(map[string]*CourseProgress)}
}

// Normalize fills nil maps left behind by hand-edited or partial documents.
func (u *UserProgress) Normalize() {
	if u.Courses == nil {
		u.Courses = make(map[string]*CourseProgress)
	}
	for id, c := range u.Courses {
		if c == nil {
			delete(u.Courses, id)
			continue
		}
		if c.CourseID == "" {
			c.CourseID = id
		}
		if c.VideosProgress == nil {
			c.VideosProgress = make(map[string]VideoProgress)
		}
	}
}

// Course returns the course entry, creating an empty one on first use.
func (u *UserProgress) Course(courseID string) *CourseProgress {
	if u.Courses == nil {
		u.Courses = make(map[string]*CourseProgress)
	}
	c, ok := u.Courses[courseID]
	if !ok {
		c = NewCourseProgress(courseID)
		u.Courses[courseID] = c
	}
	return c
}

// CertificateData is the read model handed to the certificate renderer.
// swagger:model CertificateData
type CertificateData struct {
	CourseID             string     `json:"courseId"`
	CertificateID        string     `json:"certificateId"`
	CompletionDate       *time.Time `json:"completionDate,omitempty"`
	CertificateGenerated bool       `json:"certificateGenerated"`
	CompletedVideos      int        `json:"completedVideos"`
	TotalVideos          int        `json:"totalVideos"`
	StudentName          string     `json:"studentName"`
}
