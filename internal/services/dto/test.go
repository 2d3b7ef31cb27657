package dto

import (
	"time"

	"talenthub_backend/internal/models"
)

type CreateTestRequest struct {
	Title           string `json:"title" validate:"required,min=3,max=150"`
	Description     string `json:"description" validate:"omitempty,max=5000"`
	Category        string `json:"category" validate:"omitempty,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=0"`
}

type UpdateTestRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category        *string `json:"category,omitempty" validate:"omitempty,max=100"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=0"`
}

type CreateQuestionRequest struct {
	Text               string   `json:"text" validate:"required,min=3,max=2000"`
	Options            []string `json:"options" validate:"required,min=2,max=10,dive,required"`
	CorrectAnswerIndex int      `json:"correct_answer_index" validate:"min=0"`
	Position           int      `json:"position" validate:"omitempty,min=0"`
}

type UpdateQuestionRequest struct {
	Text               *string  `json:"text,omitempty" validate:"omitempty,min=3,max=2000"`
	Options            []string `json:"options,omitempty" validate:"omitempty,min=2,max=10,dive,required"`
	CorrectAnswerIndex *int     `json:"correct_answer_index,omitempty" validate:"omitempty,min=0"`
	Position           *int     `json:"position,omitempty" validate:"omitempty,min=0"`
}

type SubmitTestRequest struct {
	// Answers maps question ID to the chosen option index.
	Answers map[string]int `json:"answers" validate:"required,min=1"`
}

type TestResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
	Deleted         bool      `json:"deleted,omitempty"`
}

func NewTestResponse(test *models.Test, questionCount int) *TestResponse {
	return &TestResponse{
		ID:              test.ID,
		Title:           test.Title,
		Description:     test.Description,
		Category:        test.Category,
		DurationMinutes: test.DurationMinutes,
		QuestionCount:   questionCount,
		CreatedAt:       test.CreatedAt,
		Deleted:         test.DeletedAt.Valid,
	}
}

// QuestionResponse never exposes the correct answer index.
type QuestionResponse struct {
	ID       string   `json:"id"`
	TestID   string   `json:"test_id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Position int      `json:"position"`
}

func NewQuestionResponse(question *models.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:       question.ID,
		TestID:   question.TestID,
		Text:     question.Text,
		Options:  question.GetOptions(),
		Position: question.Position,
	}
}

type TestResultResponse struct {
	TestID        string    `json:"test_id"`
	Score         int       `json:"score"`
	Total         int       `json:"total"`
	PointsAwarded int       `json:"points_awarded"`
	BestScore     int       `json:"best_score"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type AttemptResponse struct {
	ID            string    `json:"id"`
	TestID        string    `json:"test_id"`
	TestTitle     string    `json:"test_title,omitempty"`
	Score         int       `json:"score"`
	Total         int       `json:"total"`
	PointsAwarded int       `json:"points_awarded"`
	CreatedAt     time.Time `json:"created_at"`
}
