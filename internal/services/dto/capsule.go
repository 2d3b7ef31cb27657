package dto

import (
	"time"

	"talenthub_backend/internal/models"
)

type CreateCapsuleRequest struct {
	Title           string `json:"title" validate:"required,min=3,max=150"`
	Description     string `json:"description" validate:"omitempty,max=5000"`
	VideoURL        string `json:"video_url" validate:"required,url"`
	DurationSeconds int    `json:"duration_seconds" validate:"omitempty,min=0"`
	Category        string `json:"category" validate:"omitempty,max=100"`
}

type UpdateCapsuleRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	VideoURL        *string `json:"video_url,omitempty" validate:"omitempty,url"`
	DurationSeconds *int    `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	Category        *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

type ListCapsulesRequest struct {
	Pagination
	Category string `form:"category" validate:"omitempty,max=100"`
}

type CapsuleResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	VideoURL        string    `json:"video_url"`
	DurationSeconds int       `json:"duration_seconds"`
	Category        string    `json:"category"`
	Author          string    `json:"author"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewCapsuleResponse(capsule *models.Capsule) *CapsuleResponse {
	resp := &CapsuleResponse{
		ID:              capsule.ID,
		Title:           capsule.Title,
		Description:     capsule.Description,
		VideoURL:        capsule.VideoURL,
		DurationSeconds: capsule.DurationSeconds,
		Category:        capsule.Category,
		CreatedAt:       capsule.CreatedAt,
	}
	if capsule.Author != nil {
		resp.Author = capsule.Author.Name
	}
	return resp
}
