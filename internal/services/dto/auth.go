package dto

import (
	"time"

	"talenthub_backend/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required,is-user-role"`
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Phone    string          `json:"phone" validate:"omitempty,max=30"`

	// Coach fields
	Specialty string `json:"specialty,omitempty" validate:"required_if=Role coach,omitempty,max=100"`

	// Enterprise fields
	CompanyName string `json:"company_name,omitempty" validate:"required_if=Role enterprise,omitempty,max=150"`
	Industry    string `json:"industry,omitempty" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// AuthResponse carries the token pair issued on register, login and refresh.
type AuthResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         *UserDTO `json:"user"`
}

// UserDTO is the public projection of a user account.
type UserDTO struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone,omitempty"`
	Bio         string          `json:"bio,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Specialty   string          `json:"specialty,omitempty"`
	CompanyName string          `json:"company_name,omitempty"`
	Industry    string          `json:"industry,omitempty"`
	Points      int             `json:"points"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewUserDTO maps a model to its public projection. baseURL resolves stored
// image paths into absolute URLs.
func NewUserDTO(user *models.User, baseURL string) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Name:        user.Name,
		Phone:       user.Phone,
		Bio:         user.Bio,
		ImageURL:    user.ImageURL(baseURL),
		Specialty:   user.Specialty,
		CompanyName: user.CompanyName,
		Industry:    user.Industry,
		Points:      user.Points,
		CreatedAt:   user.CreatedAt,
	}
}
