package services

import (
	"time"

	"talenthub_backend/internal/config"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type FormationService interface {
	Create(db *gorm.DB, req *dto.CreateFormationRequest) (*dto.FormationResponse, error)
	Update(db *gorm.DB, formationID string, req *dto.UpdateFormationRequest) (*dto.FormationResponse, error)
	Delete(db *gorm.DB, formationID string) error
	Get(db *gorm.DB, formationID, viewerID string) (*dto.FormationResponse, error)
	Access(db *gorm.DB, formationID, viewerID string) (*dto.FormationAccessResponse, error)
	List(db *gorm.DB, req *dto.ListFormationsRequest, viewerID string) (*dto.PaginatedResponse, error)
	SetImage(db *gorm.DB, formationID, imagePath string) error

	Pay(db *gorm.DB, userID string, req *dto.PayFormationRequest) (*dto.PaymentResponse, error)
	ListPayments(db *gorm.DB, userID string) ([]*dto.PaymentResponse, error)
	Complete(db *gorm.DB, userID, formationID string) (*dto.CompletionResponse, error)
	MyFormations(db *gorm.DB, userID string) ([]*dto.CompletionResponse, error)
}

type FormationServiceImpl struct {
	formationRepo repositories.FormationRepository
	paymentRepo   repositories.PaymentRepository
	userRepo      repositories.UserRepository
}

func NewFormationService(
	formationRepo repositories.FormationRepository,
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
) FormationService {
	return &FormationServiceImpl{
		formationRepo: formationRepo,
		paymentRepo:   paymentRepo,
		userRepo:      userRepo,
	}
}

func (s *FormationServiceImpl) Create(db *gorm.DB, req *dto.CreateFormationRequest) (*dto.FormationResponse, error) {
	formation := &models.Formation{
		Title:         req.Title,
		Description:   req.Description,
		DurationHours: req.DurationHours,
		Level:         req.Level,
		Price:         req.Price,
	}
	if err := s.formationRepo.Create(db, formation); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewFormationResponse(formation, config.GetConfig().Storage.BaseURL, false, false), nil
}

func (s *FormationServiceImpl) Update(db *gorm.DB, formationID string, req *dto.UpdateFormationRequest) (*dto.FormationResponse, error) {
	formation, err := s.findFormation(db, formationID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		formation.Title = *req.Title
	}
	if req.Description != nil {
		formation.Description = *req.Description
	}
	if req.DurationHours != nil {
		formation.DurationHours = *req.DurationHours
	}
	if req.Level != nil {
		formation.Level = *req.Level
	}
	if req.Price != nil {
		formation.Price = *req.Price
	}

	if err := s.formationRepo.Update(db, formation); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewFormationResponse(formation, config.GetConfig().Storage.BaseURL, false, false), nil
}

func (s *FormationServiceImpl) Delete(db *gorm.DB, formationID string) error {
	if err := s.formationRepo.Delete(db, formationID); err != nil {
		if apperrors.Is(err, repositories.ErrFormationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FormationServiceImpl) Get(db *gorm.DB, formationID, viewerID string) (*dto.FormationResponse, error) {
	formation, err := s.findFormation(db, formationID)
	if err != nil {
		return nil, err
	}

	hasAccess, completed := s.viewerState(db, viewerID, formationID)
	return dto.NewFormationResponse(formation, config.GetConfig().Storage.BaseURL, hasAccess, completed), nil
}

func (s *FormationServiceImpl) List(db *gorm.DB, req *dto.ListFormationsRequest, viewerID string) (*dto.PaginatedResponse, error) {
	req.Normalize()

	formations, total, err := s.formationRepo.FindWithFilter(db, repositories.FormationFilter{
		Level:    req.Level,
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	baseURL := config.GetConfig().Storage.BaseURL
	items := make([]*dto.FormationResponse, 0, len(formations))
	for i := range formations {
		hasAccess, completed := s.viewerState(db, viewerID, formations[i].ID)
		items = append(items, dto.NewFormationResponse(&formations[i], baseURL, hasAccess, completed))
	}
	return dto.NewPaginatedResponse(items, total, req.Page, req.PageSize), nil
}

func (s *FormationServiceImpl) SetImage(db *gorm.DB, formationID, imagePath string) error {
	formation, err := s.findFormation(db, formationID)
	if err != nil {
		return err
	}
	formation.ImagePath = imagePath
	if err := s.formationRepo.Update(db, formation); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Pay records an entitlement. With a formation ID it unlocks one formation;
// without, it unlocks the whole catalog.
func (s *FormationServiceImpl) Pay(db *gorm.DB, userID string, req *dto.PayFormationRequest) (*dto.PaymentResponse, error) {
	payment := &models.UserPayment{
		UserID:   userID,
		Amount:   req.Amount,
		Status:   models.PaymentStatusPaid,
		IsGlobal: req.FormationID == "",
	}

	if req.FormationID != "" {
		if _, err := s.findFormation(db, req.FormationID); err != nil {
			return nil, err
		}
		payment.FormationID = &req.FormationID
	}

	if err := s.paymentRepo.Create(db, payment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaymentResponse(payment), nil
}

func (s *FormationServiceImpl) ListPayments(db *gorm.DB, userID string) ([]*dto.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, dto.NewPaymentResponse(&payments[i]))
	}
	return items, nil
}

// Complete marks a paid formation as finished. Completion points are awarded
// once; repeating a formation refreshes the completion date only.
func (s *FormationServiceImpl) Complete(db *gorm.DB, userID, formationID string) (*dto.CompletionResponse, error) {
	if _, err := s.findFormation(db, formationID); err != nil {
		return nil, err
	}

	hasAccess, err := s.paymentRepo.HasAccess(db, userID, formationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !hasAccess {
		return nil, apperrors.ErrNoFormationAccess
	}

	existing, err := s.formationRepo.FindCompletion(db, userID, formationID)
	if err != nil && !apperrors.Is(err, repositories.ErrCompletionNotFound) {
		return nil, apperrors.InternalError(err)
	}
	firstCompletion := existing == nil

	completedAt := time.Now()
	if err := s.formationRepo.UpsertCompletion(db, userID, formationID, completedAt); err != nil {
		return nil, apperrors.InternalError(err)
	}

	points := 0
	if firstCompletion {
		points = config.GetConfig().Points.FormationCompletion
		if err := s.userRepo.AddPoints(db, userID, points); err != nil {
			logger.WithError(err).Error("failed to award completion points", "user_id", userID)
		}
	}

	return &dto.CompletionResponse{
		FormationID:   formationID,
		CompletedAt:   completedAt,
		PointsAwarded: points,
	}, nil
}

func (s *FormationServiceImpl) MyFormations(db *gorm.DB, userID string) ([]*dto.CompletionResponse, error) {
	completions, err := s.formationRepo.ListCompletionsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	baseURL := config.GetConfig().Storage.BaseURL
	items := make([]*dto.CompletionResponse, 0, len(completions))
	for i := range completions {
		item := &dto.CompletionResponse{
			FormationID: completions[i].FormationID,
			CompletedAt: completions[i].CompletedAt,
		}
		if completions[i].Formation.ID != "" {
			item.Formation = dto.NewFormationResponse(&completions[i].Formation, baseURL, true, true)
		}
		items = append(items, item)
	}
	return items, nil
}

// Access reports the entitlement state without the full formation payload.
func (s *FormationServiceImpl) Access(db *gorm.DB, formationID, viewerID string) (*dto.FormationAccessResponse, error) {
	formation, err := s.findFormation(db, formationID)
	if err != nil {
		return nil, err
	}

	hasAccess, completed := s.viewerState(db, viewerID, formation.ID)
	return &dto.FormationAccessResponse{
		FormationID: formation.ID,
		HasAccess:   hasAccess,
		Completed:   completed,
	}, nil
}

func (s *FormationServiceImpl) viewerState(db *gorm.DB, viewerID, formationID string) (hasAccess, completed bool) {
	if viewerID == "" {
		return false, false
	}
	hasAccess, _ = s.paymentRepo.HasAccess(db, viewerID, formationID)
	if completion, err := s.formationRepo.FindCompletion(db, viewerID, formationID); err == nil && completion != nil {
		completed = true
	}
	return hasAccess, completed
}

func (s *FormationServiceImpl) findFormation(db *gorm.DB, formationID string) (*models.Formation, error) {
	formation, err := s.formationRepo.FindByID(db, formationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFormationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return formation, nil
}
