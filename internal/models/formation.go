package models

import (
	"strings"
	"time"
)

// Formation is a training course in the catalog.
type Formation struct {
	BaseModel
	Title         string  `gorm:"not null" json:"title"`
	Description   string  `json:"description"`
	DurationHours int     `json:"duration_hours"`
	Level         string  `json:"level"` // "beginner", "intermediate", "advanced"
	Rating        float64 `gorm:"default:0" json:"rating"`
	Price         float64 `gorm:"not null" json:"price"`
	ImagePath     string  `json:"-"`

	Completions []FormationCompletion `gorm:"foreignKey:FormationID" json:"-"`
}

// ImageURL normalizes the stored path to the public files prefix.
// Absolute URLs are returned as-is.
func (f *Formation) ImageURL(baseURL string) string {
	if f.ImagePath == "" {
		return ""
	}
	if strings.HasPrefix(f.ImagePath, "http://") || strings.HasPrefix(f.ImagePath, "https://") {
		return f.ImagePath
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(f.ImagePath, "/")
}

// FormationCompletion is the completed-by pivot carrying the completion time.
type FormationCompletion struct {
	UserID      string    `gorm:"primaryKey" json:"user_id"`
	FormationID string    `gorm:"primaryKey" json:"formation_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`

	Formation Formation `gorm:"foreignKey:FormationID" json:"formation,omitempty"`
}

func (FormationCompletion) TableName() string {
	return "formation_completions"
}
