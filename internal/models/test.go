package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Test is a psychometric/skill test. Soft-deleted tests stay out of normal
// queries but remain for audit.
type Test struct {
	BaseModelWithDeleted
	Title           string `gorm:"not null" json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`

	Questions []Question `gorm:"foreignKey:TestID" json:"questions,omitempty"`
}

// Question stores its options as a JSON array. CorrectAnswerIndex is never
// serialized; student-facing DTOs strip it.
type Question struct {
	BaseModelWithDeleted
	TestID             string         `gorm:"not null;index" json:"test_id"`
	Text               string         `gorm:"not null" json:"text"`
	Options            datatypes.JSON `json:"options"`
	CorrectAnswerIndex int            `gorm:"not null" json:"-"`
	Position           int            `gorm:"default:0" json:"position"`
}

// GetOptions decodes the options column.
func (q *Question) GetOptions() []string {
	var options []string
	if len(q.Options) > 0 {
		_ = json.Unmarshal(q.Options, &options)
	}
	return options
}

// SetOptions encodes options into the JSON column.
func (q *Question) SetOptions(options []string) {
	data, _ := json.Marshal(options)
	q.Options = datatypes.JSON(data)
}

// TestAttempt records one scored submission. Retakes are allowed; points are
// awarded only for improvements over the user's best prior score.
type TestAttempt struct {
	BaseModel
	UserID        string `gorm:"not null;index:idx_attempt_user_test" json:"user_id"`
	TestID        string `gorm:"not null;index:idx_attempt_user_test" json:"test_id"`
	Score         int    `gorm:"not null" json:"score"`
	Total         int    `gorm:"not null" json:"total"`
	PointsAwarded int    `gorm:"not null" json:"points_awarded"`
}
