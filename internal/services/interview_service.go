package services

import (
	"time"

	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type InterviewService interface {
	Create(db *gorm.DB, creatorID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error)
	Update(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error)
	UpdateStatus(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole, status models.InterviewStatus) (*dto.InterviewResponse, error)
	Delete(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole) error
	Get(db *gorm.DB, interviewID string) (*dto.InterviewResponse, error)
	List(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error)

	Apply(db *gorm.DB, interviewID, userID string) error
	ListCandidates(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole) ([]*dto.CandidateResponse, error)
	MyApplications(db *gorm.DB, userID string) ([]*dto.InterviewResponse, error)
}

type InterviewServiceImpl struct {
	interviewRepo    repositories.InterviewRepository
	notificationRepo repositories.NotificationRepository
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	notificationRepo repositories.NotificationRepository,
) InterviewService {
	return &InterviewServiceImpl{
		interviewRepo:    interviewRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *InterviewServiceImpl) Create(db *gorm.DB, creatorID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	interview := &models.Interview{
		CreatorID:   creatorID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.InterviewStatusPending,
		ScheduledAt: req.ScheduledAt,
		Location:    req.Location,
	}
	if interview.ScheduledAt != nil {
		interview.Status = models.InterviewStatusScheduled
	}
	if err := s.interviewRepo.Create(db, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewInterviewResponse(interview), nil
}

func (s *InterviewServiceImpl) Update(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error) {
	interview, err := s.findOwned(db, interviewID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		interview.Title = *req.Title
	}
	if req.Description != nil {
		interview.Description = *req.Description
	}
	if req.ScheduledAt != nil {
		interview.ScheduledAt = req.ScheduledAt
		if interview.Status == models.InterviewStatusPending {
			interview.Status = models.InterviewStatusScheduled
		}
	}
	if req.Location != nil {
		interview.Location = *req.Location
	}

	if err := s.interviewRepo.Update(db, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewInterviewResponse(interview), nil
}

func (s *InterviewServiceImpl) UpdateStatus(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole, status models.InterviewStatus) (*dto.InterviewResponse, error) {
	interview, err := s.findOwned(db, interviewID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	// Completed and cancelled are terminal.
	if interview.Status == models.InterviewStatusCompleted || interview.Status == models.InterviewStatusCancelled {
		return nil, apperrors.ErrInvalidStatus("interview", "Interview status can no longer change")
	}

	if err := s.interviewRepo.UpdateStatus(db, interviewID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	interview.Status = status
	return dto.NewInterviewResponse(interview), nil
}

func (s *InterviewServiceImpl) Delete(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole) error {
	if _, err := s.findOwned(db, interviewID, actorID, actorRole); err != nil {
		return err
	}
	if err := s.interviewRepo.Delete(db, interviewID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *InterviewServiceImpl) Get(db *gorm.DB, interviewID string) (*dto.InterviewResponse, error) {
	interview, err := s.findInterview(db, interviewID)
	if err != nil {
		return nil, err
	}
	return dto.NewInterviewResponse(interview), nil
}

func (s *InterviewServiceImpl) List(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	interviews, total, err := s.interviewRepo.FindAll(db, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		items = append(items, dto.NewInterviewResponse(&interviews[i]))
	}
	return dto.NewPaginatedResponse(items, total, page, pageSize), nil
}

// Apply registers the user as a candidate. A second application to the same
// interview conflicts.
func (s *InterviewServiceImpl) Apply(db *gorm.DB, interviewID, userID string) error {
	interview, err := s.findInterview(db, interviewID)
	if err != nil {
		return err
	}

	if interview.Status == models.InterviewStatusCompleted || interview.Status == models.InterviewStatusCancelled {
		return apperrors.ErrInvalidStatus("interview", "Interview is no longer open for candidates")
	}

	if err := s.interviewRepo.AddCandidate(db, interviewID, userID, time.Now()); err != nil {
		if apperrors.Is(err, repositories.ErrCandidateExists) {
			return apperrors.ErrDuplicateCandidate
		}
		return apperrors.InternalError(err)
	}

	s.notifyCreator(db, interview, userID)
	return nil
}

func (s *InterviewServiceImpl) ListCandidates(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole) ([]*dto.CandidateResponse, error) {
	if _, err := s.findOwned(db, interviewID, actorID, actorRole); err != nil {
		return nil, err
	}

	candidates, err := s.interviewRepo.ListCandidates(db, interviewID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		item := &dto.CandidateResponse{
			UserID:    candidates[i].UserID,
			AppliedAt: candidates[i].AppliedAt,
		}
		if candidates[i].User != nil {
			item.Name = candidates[i].User.Name
			item.Email = candidates[i].User.Email
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *InterviewServiceImpl) MyApplications(db *gorm.DB, userID string) ([]*dto.InterviewResponse, error) {
	candidacies, err := s.interviewRepo.ListByCandidate(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.InterviewResponse, 0, len(candidacies))
	for i := range candidacies {
		if candidacies[i].Interview != nil {
			items = append(items, dto.NewInterviewResponse(candidacies[i].Interview))
		}
	}
	return items, nil
}

func (s *InterviewServiceImpl) notifyCreator(db *gorm.DB, interview *models.Interview, candidateID string) {
	notification := &models.Notification{
		UserID:  &interview.CreatorID,
		Type:    "new_candidate",
		Title:   "New interview candidate",
		Message: "A new candidate applied to " + interview.Title,
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.WithError(err).Warn("failed to notify interview creator",
			"interview_id", interview.ID, "candidate_id", candidateID)
	}
}

func (s *InterviewServiceImpl) findInterview(db *gorm.DB, interviewID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(db, interviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

func (s *InterviewServiceImpl) findOwned(db *gorm.DB, interviewID, actorID string, actorRole models.UserRole) (*models.Interview, error) {
	interview, err := s.findInterview(db, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.CreatorID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotOwner
	}
	return interview, nil
}
