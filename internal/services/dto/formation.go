package dto

import (
	"time"

	"talenthub_backend/internal/models"
)

type CreateFormationRequest struct {
	Title         string  `json:"title" validate:"required,min=3,max=150"`
	Description   string  `json:"description" validate:"omitempty,max=5000"`
	DurationHours int     `json:"duration_hours" validate:"omitempty,min=0"`
	Level         string  `json:"level" validate:"omitempty,max=50"`
	Price         float64 `json:"price" validate:"omitempty,min=0"`
}

type UpdateFormationRequest struct {
	Title         *string  `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	DurationHours *int     `json:"duration_hours,omitempty" validate:"omitempty,min=0"`
	Level         *string  `json:"level,omitempty" validate:"omitempty,max=50"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}

type ListFormationsRequest struct {
	Pagination
	Level  string `form:"level" validate:"omitempty,max=50"`
	Search string `form:"search" validate:"omitempty,max=100"`
}

type PayFormationRequest struct {
	// FormationID empty means a global entitlement covering the whole catalog.
	FormationID string  `json:"formation_id,omitempty" validate:"omitempty,uuid4"`
	Amount      float64 `json:"amount" validate:"required,min=0"`
}

type FormationResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DurationHours int       `json:"duration_hours"`
	Level         string    `json:"level"`
	Rating        float64   `json:"rating"`
	Price         float64   `json:"price"`
	ImageURL      string    `json:"image_url,omitempty"`
	HasAccess     bool      `json:"has_access"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewFormationResponse(formation *models.Formation, baseURL string, hasAccess, completed bool) *FormationResponse {
	return &FormationResponse{
		ID:            formation.ID,
		Title:         formation.Title,
		Description:   formation.Description,
		DurationHours: formation.DurationHours,
		Level:         formation.Level,
		Rating:        formation.Rating,
		Price:         formation.Price,
		ImageURL:      formation.ImageURL(baseURL),
		HasAccess:     hasAccess,
		Completed:     completed,
		CreatedAt:     formation.CreatedAt,
	}
}

// FormationAccessResponse answers "can this viewer open the formation".
type FormationAccessResponse struct {
	FormationID string `json:"formation_id"`
	HasAccess   bool   `json:"has_access"`
	Completed   bool   `json:"completed"`
}

type CompletionResponse struct {
	FormationID   string             `json:"formation_id"`
	CompletedAt   time.Time          `json:"completed_at"`
	PointsAwarded int                `json:"points_awarded"`
	Formation     *FormationResponse `json:"formation,omitempty"`
}

type PaymentResponse struct {
	ID          string               `json:"id"`
	FormationID *string              `json:"formation_id,omitempty"`
	IsGlobal    bool                 `json:"is_global"`
	Amount      float64              `json:"amount"`
	Status      models.PaymentStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

func NewPaymentResponse(payment *models.UserPayment) *PaymentResponse {
	return &PaymentResponse{
		ID:          payment.ID,
		FormationID: payment.FormationID,
		IsGlobal:    payment.IsGlobal,
		Amount:      payment.Amount,
		Status:      payment.Status,
		CreatedAt:   payment.CreatedAt,
	}
}
