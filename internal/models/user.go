package models

import (
	"strings"
	"time"
)

// User carries the role discriminator plus the profile fields that role
// conditions: Specialty for coaches, CompanyName/Industry for enterprises.
type User struct {
	BaseModelWithDeleted
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Name         string   `gorm:"not null" json:"name"`
	Phone        string   `json:"phone,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	ImagePath    string   `json:"-"`

	// Coach
	Specialty string `json:"specialty,omitempty"`

	// Enterprise
	CompanyName string `json:"company_name,omitempty"`
	Industry    string `json:"industry,omitempty"`

	Points int `gorm:"default:0" json:"points"`

	// Relations
	Payments        []UserPayment         `gorm:"foreignKey:UserID" json:"-"`
	Completions     []FormationCompletion `gorm:"foreignKey:UserID" json:"-"`
	Capsules        []Capsule             `gorm:"foreignKey:UserID" json:"-"`
	JobOffers       []JobOffer            `gorm:"foreignKey:UserID" json:"-"`
	JobApplications []JobApplication      `gorm:"foreignKey:UserID" json:"-"`
	Workshops       []DiffusionWorkshop   `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens   []RefreshToken        `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// ImageURL normalizes the stored path to the public files prefix.
// Absolute URLs are returned as-is.
func (u *User) ImageURL(baseURL string) string {
	if u.ImagePath == "" {
		return ""
	}
	if strings.HasPrefix(u.ImagePath, "http://") || strings.HasPrefix(u.ImagePath, "https://") {
		return u.ImagePath
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(u.ImagePath, "/")
}
