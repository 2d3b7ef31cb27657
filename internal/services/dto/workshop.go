package dto

import (
	"time"

	"talenthub_backend/internal/models"
)

type CreateWorkshopRequest struct {
	Title            string              `json:"title" validate:"required,min=3,max=150"`
	Description      string              `json:"description" validate:"omitempty,max=5000"`
	Type             models.WorkshopType `json:"type" validate:"required,is-workshop-type"`
	Date             time.Time           `json:"date" validate:"required"`
	RegistrationLink string              `json:"registration_link" validate:"omitempty,url"`
}

type UpdateWorkshopRequest struct {
	Title            *string              `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description      *string              `json:"description,omitempty" validate:"omitempty,max=5000"`
	Type             *models.WorkshopType `json:"type,omitempty" validate:"omitempty,is-workshop-type"`
	Date             *time.Time           `json:"date,omitempty"`
	RegistrationLink *string              `json:"registration_link,omitempty" validate:"omitempty,url"`
}

type ListWorkshopsRequest struct {
	Pagination
	Type     models.WorkshopType `form:"type" validate:"omitempty,is-workshop-type"`
	Upcoming bool                `form:"upcoming"`
}

type WorkshopResponse struct {
	ID               string              `json:"id"`
	UserID           string              `json:"user_id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Type             models.WorkshopType `json:"type"`
	Date             time.Time           `json:"date"`
	RegistrationLink string              `json:"registration_link,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

func NewWorkshopResponse(workshop *models.DiffusionWorkshop) *WorkshopResponse {
	return &WorkshopResponse{
		ID:               workshop.ID,
		UserID:           workshop.UserID,
		Title:            workshop.Title,
		Description:      workshop.Description,
		Type:             workshop.Type,
		Date:             workshop.Date,
		RegistrationLink: workshop.RegistrationLink,
		CreatedAt:        workshop.CreatedAt,
	}
}
