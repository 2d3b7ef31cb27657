package models

// Capsule is a short video lesson owned by its author (coach or admin).
type Capsule struct {
	BaseModel
	UserID          string `gorm:"not null;index" json:"user_id"`
	Title           string `gorm:"not null" json:"title"`
	Description     string `json:"description"`
	VideoURL        string `gorm:"not null" json:"video_url"`
	DurationSeconds int    `json:"duration_seconds"`
	Category        string `json:"category"`

	Author *User `gorm:"foreignKey:UserID" json:"author,omitempty"`
}
