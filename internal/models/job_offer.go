package models

// JobOffer is owned by an enterprise (or admin) user.
type JobOffer struct {
	BaseModel
	UserID      string  `gorm:"not null;index" json:"user_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Contract    string  `json:"contract"` // "cdi", "cdd", "internship", "freelance"
	Salary      float64 `json:"salary"`
	Status      string  `gorm:"type:varchar(20);default:'open'" json:"status"`

	Owner        *User            `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Applications []JobApplication `gorm:"foreignKey:JobOfferID" json:"-"`
}

// JobApplication is the applied-by pivot. The composite unique index enforces
// one application per (user, job offer) pair.
type JobApplication struct {
	BaseModel
	UserID      string            `gorm:"not null;uniqueIndex:idx_user_job_offer" json:"user_id"`
	JobOfferID  string            `gorm:"not null;uniqueIndex:idx_user_job_offer" json:"job_offer_id"`
	CoverLetter string            `json:"cover_letter"`
	CVPath      string            `json:"cv_path,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Applicant *User     `gorm:"foreignKey:UserID" json:"applicant,omitempty"`
	JobOffer  *JobOffer `gorm:"foreignKey:JobOfferID" json:"job_offer,omitempty"`
}
