package model

type CourseLevel string

const (
	Beginner     CourseLevel = "Beginner"
	Intermediate CourseLevel = "Intermediate"
	Advanced     CourseLevel = "Advanced"
)

// Course 课程定义，由课程目录提供，核心逻辑只读
// swagger:model Course
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Instructor  string      `json:"instructor"`
	Thumbnail   string      `json:"thumbnail"`
	Duration    string      `json:"duration"`
	Level       CourseLevel `json:"level"`
	Videos      []Video     `json:"videos"`
}

// swagger:model Video
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoURL    string  `json:"videoUrl"`
	Duration    float64 `json:"duration"` // 秒
	Order       int     `json:"order"`
	Quiz        Quiz    `json:"quiz"`
}

func (c *Course) VideoIndex(videoID string) int {
	for i := range c.Videos {
		if c.Videos[i].ID == videoID {
			return i
		}
	}
	return -1
}

func (c *Course) Video(videoID string) *Video {
	if i := c.VideoIndex(videoID); i >= 0 {
		return &c.Videos[i]
	}
	return nil
}

// NextVideo returns nil for the last video or an unknown id.
func (c *Course) NextVideo(videoID string) *Video {
	i := c.VideoIndex(videoID)
	if i == -1 || i == len(c.Videos)-1 {
		return nil
	}
	return &c.Videos[i+1]
}

func (c *Course) PreviousVideo(videoID string) *Video {
	i := c.VideoIndex(videoID)
	if i <= 0 {
		return nil
	}
	return &c.Videos[i-1]
}

// swagger:model CourseCatalogItem
type CourseCatalogItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Thumbnail   string      `json:"thumbnail"`
	VideoCount  int         `json:"videoCount"`
	Duration    string      `json:"duration"`
	Level       CourseLevel `json:"level"`
}

type CourseCatalog struct {
	Courses []CourseCatalogItem `json:"courses"`
}

// swagger:model Quiz
type Quiz struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}
