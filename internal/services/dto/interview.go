package dto

import (
	"time"

	"talenthub_backend/internal/models"
)

type CreateInterviewRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=150"`
	Description string     `json:"description" validate:"omitempty,max=5000"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Location    string     `json:"location" validate:"omitempty,max=200"`
}

type UpdateInterviewRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=200"`
}

type UpdateInterviewStatusRequest struct {
	Status models.InterviewStatus `json:"status" validate:"required,is-interview-status"`
}

type InterviewResponse struct {
	ID          string                 `json:"id"`
	CreatorID   string                 `json:"creator_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Status      models.InterviewStatus `json:"status"`
	ScheduledAt *time.Time             `json:"scheduled_at,omitempty"`
	Location    string                 `json:"location,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

func NewInterviewResponse(interview *models.Interview) *InterviewResponse {
	return &InterviewResponse{
		ID:          interview.ID,
		CreatorID:   interview.CreatorID,
		Title:       interview.Title,
		Description: interview.Description,
		Status:      interview.Status,
		ScheduledAt: interview.ScheduledAt,
		Location:    interview.Location,
		CreatedAt:   interview.CreatedAt,
	}
}

type CandidateResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	AppliedAt time.Time `json:"applied_at"`
}
