package models

import "time"

// DiffusionWorkshop is a broadcast event: webinar, workshop or conference.
type DiffusionWorkshop struct {
	BaseModel
	UserID           string       `gorm:"not null;index" json:"user_id"`
	Title            string       `gorm:"not null" json:"title"`
	Description      string       `json:"description"`
	Type             WorkshopType `gorm:"type:varchar(20);not null" json:"type"`
	Date             time.Time    `gorm:"not null" json:"date"`
	RegistrationLink string       `json:"registration_link,omitempty"`

	Owner *User `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}

func (DiffusionWorkshop) TableName() string {
	return "diffusion_workshops"
}
