package dto

import "talenthub_backend/internal/models"

type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Specialty   *string `json:"specialty,omitempty" validate:"omitempty,max=100"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=150"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=100"`
}

type ListUsersRequest struct {
	Pagination
	Role   models.UserRole `form:"role" validate:"omitempty,is-user-role"`
	Search string          `form:"search" validate:"omitempty,max=100"`
}

type UpdateUserRoleRequest struct {
	Role models.UserRole `json:"role" validate:"required,is-user-role"`
}
