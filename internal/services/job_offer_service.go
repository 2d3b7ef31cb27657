package services

import (
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobOfferService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateJobOfferRequest) (*dto.JobOfferResponse, error)
	Update(db *gorm.DB, offerID, actorID string, actorRole models.UserRole, req *dto.UpdateJobOfferRequest) (*dto.JobOfferResponse, error)
	Delete(db *gorm.DB, offerID, actorID string, actorRole models.UserRole) error
	Get(db *gorm.DB, offerID string) (*dto.JobOfferResponse, error)
	List(db *gorm.DB, req *dto.ListJobOffersRequest) (*dto.PaginatedResponse, error)
	ListMine(db *gorm.DB, userID string) ([]*dto.JobOfferResponse, error)

	Apply(db *gorm.DB, offerID, userID string, req *dto.ApplyJobOfferRequest) (*dto.ApplicationResponse, error)
	ListApplications(db *gorm.DB, offerID, actorID string, actorRole models.UserRole) ([]*dto.ApplicationResponse, error)
	MyApplications(db *gorm.DB, userID string) ([]*dto.ApplicationResponse, error)
	SetApplicationStatus(db *gorm.DB, applicationID, actorID string, actorRole models.UserRole, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
}

type JobOfferServiceImpl struct {
	jobOfferRepo     repositories.JobOfferRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
}

func NewJobOfferService(
	jobOfferRepo repositories.JobOfferRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
) JobOfferService {
	return &JobOfferServiceImpl{
		jobOfferRepo:     jobOfferRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
	}
}

func (s *JobOfferServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateJobOfferRequest) (*dto.JobOfferResponse, error) {
	offer := &models.JobOffer{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Contract:    req.Contract,
		Salary:      req.Salary,
		Status:      "open",
	}
	if err := s.jobOfferRepo.Create(db, offer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobOfferResponse(offer), nil
}

func (s *JobOfferServiceImpl) Update(db *gorm.DB, offerID, actorID string, actorRole models.UserRole, req *dto.UpdateJobOfferRequest) (*dto.JobOfferResponse, error) {
	offer, err := s.findOwned(db, offerID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.Location != nil {
		offer.Location = *req.Location
	}
	if req.Contract != nil {
		offer.Contract = *req.Contract
	}
	if req.Salary != nil {
		offer.Salary = *req.Salary
	}
	if req.Status != nil {
		offer.Status = *req.Status
	}

	if err := s.jobOfferRepo.Update(db, offer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobOfferResponse(offer), nil
}

func (s *JobOfferServiceImpl) Delete(db *gorm.DB, offerID, actorID string, actorRole models.UserRole) error {
	if _, err := s.findOwned(db, offerID, actorID, actorRole); err != nil {
		return err
	}
	if err := s.jobOfferRepo.Delete(db, offerID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobOfferServiceImpl) Get(db *gorm.DB, offerID string) (*dto.JobOfferResponse, error) {
	offer, err := s.findOffer(db, offerID)
	if err != nil {
		return nil, err
	}
	return dto.NewJobOfferResponse(offer), nil
}

func (s *JobOfferServiceImpl) List(db *gorm.DB, req *dto.ListJobOffersRequest) (*dto.PaginatedResponse, error) {
	req.Normalize()

	offers, total, err := s.jobOfferRepo.FindWithFilter(db, repositories.JobOfferFilter{
		Location: req.Location,
		Contract: req.Contract,
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.JobOfferResponse, 0, len(offers))
	for i := range offers {
		items = append(items, dto.NewJobOfferResponse(&offers[i]))
	}
	return dto.NewPaginatedResponse(items, total, req.Page, req.PageSize), nil
}

func (s *JobOfferServiceImpl) ListMine(db *gorm.DB, userID string) ([]*dto.JobOfferResponse, error) {
	offers, _, err := s.jobOfferRepo.FindWithFilter(db, repositories.JobOfferFilter{OwnerID: userID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.JobOfferResponse, 0, len(offers))
	for i := range offers {
		items = append(items, dto.NewJobOfferResponse(&offers[i]))
	}
	return items, nil
}

// Apply creates the application. One application per user per offer; a repeat
// conflicts.
func (s *JobOfferServiceImpl) Apply(db *gorm.DB, offerID, userID string, req *dto.ApplyJobOfferRequest) (*dto.ApplicationResponse, error) {
	offer, err := s.findOffer(db, offerID)
	if err != nil {
		return nil, err
	}

	if offer.Status != "open" {
		return nil, apperrors.ErrInvalidStatus("job_offer", "Job offer is closed")
	}

	application := &models.JobApplication{
		UserID:      userID,
		JobOfferID:  offerID,
		CoverLetter: req.CoverLetter,
		CVPath:      req.CVPath,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.jobOfferRepo.CreateApplication(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyOwner(db, offer, userID)
	return dto.NewApplicationResponse(application), nil
}

func (s *JobOfferServiceImpl) ListApplications(db *gorm.DB, offerID, actorID string, actorRole models.UserRole) ([]*dto.ApplicationResponse, error) {
	if _, err := s.findOwned(db, offerID, actorID, actorRole); err != nil {
		return nil, err
	}

	applications, err := s.jobOfferRepo.ListApplicationsByOffer(db, offerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, dto.NewApplicationResponse(&applications[i]))
	}
	return items, nil
}

func (s *JobOfferServiceImpl) MyApplications(db *gorm.DB, userID string) ([]*dto.ApplicationResponse, error) {
	applications, err := s.jobOfferRepo.ListApplicationsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, dto.NewApplicationResponse(&applications[i]))
	}
	return items, nil
}

// SetApplicationStatus decides an application. Pending is the only state that
// can change; accepted and rejected are terminal.
func (s *JobOfferServiceImpl) SetApplicationStatus(db *gorm.DB, applicationID, actorID string, actorRole models.UserRole, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	application, err := s.jobOfferRepo.FindApplicationByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if application.JobOffer == nil {
		return nil, apperrors.ErrNotFound(repositories.ErrJobOfferNotFound)
	}
	if application.JobOffer.UserID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotOwner
	}

	if application.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationStatusFinal
	}
	if status != models.ApplicationStatusAccepted && status != models.ApplicationStatusRejected {
		return nil, apperrors.ErrInvalidStatus("job_application", "Status must be accepted or rejected")
	}

	if err := s.jobOfferRepo.UpdateApplicationStatus(db, applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	s.notifyApplicant(db, application)
	return dto.NewApplicationResponse(application), nil
}

func (s *JobOfferServiceImpl) notifyOwner(db *gorm.DB, offer *models.JobOffer, applicantID string) {
	notification := &models.Notification{
		UserID:  &offer.UserID,
		Type:    "new_application",
		Title:   "New application",
		Message: "Someone applied to " + offer.Title,
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.WithError(err).Warn("failed to notify offer owner",
			"offer_id", offer.ID, "applicant_id", applicantID)
	}
}

func (s *JobOfferServiceImpl) notifyApplicant(db *gorm.DB, application *models.JobApplication) {
	offerTitle := ""
	if application.JobOffer != nil {
		offerTitle = application.JobOffer.Title
	}

	notification := &models.Notification{
		UserID:  &application.UserID,
		Type:    "application_status",
		Title:   "Application update",
		Message: "Your application for " + offerTitle + " is now " + string(application.Status),
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.WithError(err).Warn("failed to notify applicant", "application_id", application.ID)
	}

	if s.emailProvider == nil || application.Applicant == nil {
		return
	}
	applicant := application.Applicant
	status := string(application.Status)
	go func() {
		err := s.emailProvider.SendWithTemplate("application_status", email.TemplateData{
			"Name":       applicant.Name,
			"OfferTitle": offerTitle,
			"Status":     status,
		}, &email.Email{
			To:      []string{applicant.Email},
			Subject: "Your application status changed",
		})
		if err != nil {
			logger.WithError(err).Warn("failed to send application status email",
				"application_id", application.ID)
		}
	}()
}

func (s *JobOfferServiceImpl) findOffer(db *gorm.DB, offerID string) (*models.JobOffer, error) {
	offer, err := s.jobOfferRepo.FindByID(db, offerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobOfferNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return offer, nil
}

func (s *JobOfferServiceImpl) findOwned(db *gorm.DB, offerID, actorID string, actorRole models.UserRole) (*models.JobOffer, error) {
	offer, err := s.findOffer(db, offerID)
	if err != nil {
		return nil, err
	}
	if offer.UserID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotOwner
	}
	return offer, nil
}
