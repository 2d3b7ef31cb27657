package services

import (
	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/config"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserDTO, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	SetAvatar(db *gorm.DB, userID, imagePath string) (*dto.UserDTO, error)
	ListUsers(db *gorm.DB, req *dto.ListUsersRequest) (*dto.PaginatedResponse, error)
	GetUser(db *gorm.DB, userID string) (*dto.UserDTO, error)
	UpdateUserRole(db *gorm.DB, userID string, role models.UserRole) (*dto.UserDTO, error)
	DeleteUser(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	return s.GetUser(db, userID)
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Specialty != nil {
		user.Specialty = *req.Specialty
	}
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.Industry != nil {
		user.Industry = *req.Industry
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserDTO(user, config.GetConfig().Storage.BaseURL), nil
}

func (s *UserServiceImpl) SetAvatar(db *gorm.DB, userID, imagePath string) (*dto.UserDTO, error) {
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}

	user.ImagePath = imagePath
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserDTO(user, config.GetConfig().Storage.BaseURL), nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, req *dto.ListUsersRequest) (*dto.PaginatedResponse, error) {
	req.Normalize()

	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:     req.Role,
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	baseURL := config.GetConfig().Storage.BaseURL
	items := make([]*dto.UserDTO, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserDTO(&users[i], baseURL))
	}
	return dto.NewPaginatedResponse(items, total, req.Page, req.PageSize), nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserDTO(user, config.GetConfig().Storage.BaseURL), nil
}

func (s *UserServiceImpl) UpdateUserRole(db *gorm.DB, userID string, role models.UserRole) (*dto.UserDTO, error) {
	if !auth.ValidateRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRole(db, userID, role); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Role = role

	// Role change invalidates existing sessions.
	_ = s.refreshTokenRepo.DeleteByUserID(db, userID)

	return dto.NewUserDTO(user, config.GetConfig().Storage.BaseURL), nil
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, userID string) error {
	if err := s.userRepo.Delete(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	_ = s.refreshTokenRepo.DeleteByUserID(db, userID)
	return nil
}

func (s *UserServiceImpl) findUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
