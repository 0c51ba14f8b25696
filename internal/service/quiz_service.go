package service

import (
	"context"
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/util"
	"time"
)

// Unanswered is the selection recorded for a question without an answer.
const Unanswered = -1

// ScoreQuiz grades answers against the quiz key. It accepts partial input:
// missing answers count as Unanswered and are always wrong. A quiz without
// questions scores 0.
func ScoreQuiz(quiz model.Quiz, answers map[string]int, now time.Time) model.QuizResult {
	result := model.QuizResult{
		QuizID:         quiz.ID,
		Answers:        make([]model.QuizAnswer, 0, len(quiz.Questions)),
		TotalQuestions: len(quiz.Questions),
		CompletedAt:    now,
	}

	for _, q := range quiz.Questions {
		selected, ok := answers[q.ID]
		if !ok {
			selected = Unanswered
		}
		correct := selected != Unanswered && selected == q.CorrectAnswer
		if correct {
			result.CorrectAnswers++
		}
		result.Answers = append(result.Answers, model.QuizAnswer{
			QuestionID:     q.ID,
			SelectedAnswer: selected,
			IsCorrect:      correct,
		})
	}

	if result.TotalQuestions > 0 {
		result.Score = float64(result.CorrectAnswers) / float64(result.TotalQuestions) * 100
	}
	return result
}

// AllAnswered reports whether every question has an in-range selection.
func AllAnswered(quiz model.Quiz, answers map[string]int) bool {
	for _, q := range quiz.Questions {
		selected, ok := answers[q.ID]
		if !ok || selected < 0 || selected >= len(q.Options) {
			return false
		}
	}
	return true
}

type QuizService struct {
	Courses  *CourseService
	Progress *ProgressService
	Now      func() time.Time
}

func NewQuizService(courses *CourseService, progress *ProgressService) *QuizService {
	return &QuizService{
		Courses:  courses,
		Progress: progress,
		Now:      time.Now,
	}
}

// Submit scores a complete answer set for the video's quiz and forwards the
// score to the progress engine. The video must have been watched to the end.
func (s *QuizService) Submit(ctx context.Context, learnerID, courseID, videoID string, answers map[string]int) (*model.QuizResult, *model.CourseProgress, error) {
	video, err := s.Courses.GetVideo(ctx, courseID, videoID)
	if err != nil {
		return nil, nil, err
	}
	if !AllAnswered(video.Quiz, answers) {
		return nil, nil, util.ErrQuizIncomplete
	}

	vp := s.Progress.GetVideoProgress(ctx, learnerID, courseID, videoID)
	if vp == nil || !vp.Completed {
		return nil, nil, util.ErrVideoNotCompleted
	}

	result := ScoreQuiz(video.Quiz, answers, s.Now().UTC())
	course := s.Progress.MarkQuizCompleted(ctx, learnerID, courseID, videoID, result.Score)
	return &result, course, nil
}
