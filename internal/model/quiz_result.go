package model

import "time"

// QuizAnswer 单题作答结果，未作答的题目 SelectedAnswer 为 -1
type QuizAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// QuizResult 测验评分结果，只用于把分数交给进度引擎，不单独持久化
// swagger:model QuizResult
type QuizResult struct {
	QuizID         string       `json:"quizId"`
	Answers        []QuizAnswer `json:"answers"`
	Score          float64      `json:"score"` // 百分比
	TotalQuestions int          `json:"totalQuestions"`
	CorrectAnswers int          `json:"correctAnswers"`
	CompletedAt    time.Time    `json:"completedAt"`
}
