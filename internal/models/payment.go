package models

// UserPayment grants access to one formation or, when IsGlobal is set, to the
// whole catalog. Access checks are exists-queries over paid rows; this is an
// entitlement record, not a ledger.
type UserPayment struct {
	BaseModel
	UserID      string        `gorm:"not null;index" json:"user_id"`
	FormationID *string       `gorm:"index" json:"formation_id,omitempty"`
	IsGlobal    bool          `gorm:"default:false" json:"is_global"`
	Amount      float64       `json:"amount"`
	Status      PaymentStatus `gorm:"type:varchar(20);default:'paid'" json:"status"`

	Formation *Formation `gorm:"foreignKey:FormationID" json:"-"`
}
