package dto

import (
	"time"

	"talenthub_backend/internal/models"
)

type CreateJobOfferRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=150"`
	Description string  `json:"description" validate:"omitempty,max=10000"`
	Location    string  `json:"location" validate:"omitempty,max=200"`
	Contract    string  `json:"contract" validate:"omitempty,max=50"`
	Salary      float64 `json:"salary" validate:"omitempty,min=0"`
}

type UpdateJobOfferRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Contract    *string  `json:"contract,omitempty" validate:"omitempty,max=50"`
	Salary      *float64 `json:"salary,omitempty" validate:"omitempty,min=0"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=open closed"`
}

type ListJobOffersRequest struct {
	Pagination
	Location string `form:"location" validate:"omitempty,max=200"`
	Contract string `form:"contract" validate:"omitempty,max=50"`
	Search   string `form:"search" validate:"omitempty,max=100"`
}

type ApplyJobOfferRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`
	CVPath      string `json:"cv_path" validate:"omitempty,max=500"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

type JobOfferResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	Contract    string    `json:"contract,omitempty"`
	Salary      float64   `json:"salary,omitempty"`
	Status      string    `json:"status"`
	CompanyName string    `json:"company_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewJobOfferResponse(offer *models.JobOffer) *JobOfferResponse {
	resp := &JobOfferResponse{
		ID:          offer.ID,
		UserID:      offer.UserID,
		Title:       offer.Title,
		Description: offer.Description,
		Location:    offer.Location,
		Contract:    offer.Contract,
		Salary:      offer.Salary,
		Status:      offer.Status,
		CreatedAt:   offer.CreatedAt,
	}
	if offer.Owner != nil {
		resp.CompanyName = offer.Owner.CompanyName
	}
	return resp
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"user_id"`
	JobOfferID    string                   `json:"job_offer_id"`
	CoverLetter   string                   `json:"cover_letter,omitempty"`
	CVPath        string                   `json:"cv_path,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	ApplicantName string                   `json:"applicant_name,omitempty"`
	OfferTitle    string                   `json:"offer_title,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

func NewApplicationResponse(application *models.JobApplication) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          application.ID,
		UserID:      application.UserID,
		JobOfferID:  application.JobOfferID,
		CoverLetter: application.CoverLetter,
		CVPath:      application.CVPath,
		Status:      application.Status,
		CreatedAt:   application.CreatedAt,
	}
	if application.Applicant != nil {
		resp.ApplicantName = application.Applicant.Name
	}
	if application.JobOffer != nil {
		resp.OfferTitle = application.JobOffer.Title
	}
	return resp
}
