package models

import "time"

// Interview is created by a coach/enterprise/admin; students apply as
// candidates through the pivot below.
type Interview struct {
	BaseModel
	CreatorID   string          `gorm:"not null;index" json:"creator_id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Status      InterviewStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ScheduledAt *time.Time      `json:"scheduled_at,omitempty"`
	Location    string          `json:"location,omitempty"`

	Creator    *User                `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Candidates []InterviewCandidate `gorm:"foreignKey:InterviewID" json:"-"`
}

// InterviewCandidate is the candidates pivot carrying the applied-at time.
type InterviewCandidate struct {
	InterviewID string    `gorm:"primaryKey" json:"interview_id"`
	UserID      string    `gorm:"primaryKey" json:"user_id"`
	AppliedAt   time.Time `gorm:"not null" json:"applied_at"`

	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Interview *Interview `gorm:"foreignKey:InterviewID" json:"interview,omitempty"`
}

func (InterviewCandidate) TableName() string {
	return "interview_candidates"
}
