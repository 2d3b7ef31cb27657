package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub_backend/internal/config"
	"talenthub_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the DSN from config.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	// TranslateError maps driver duplicate-key failures to
	// gorm.ErrDuplicatedKey so concurrent inserts surface as conflicts.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate runs schema migration for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Formation{},
		&models.FormationCompletion{},
		&models.UserPayment{},
		&models.Capsule{},
		&models.Test{},
		&models.Question{},
		&models.TestAttempt{},
		&models.Interview{},
		&models.InterviewCandidate{},
		&models.JobOffer{},
		&models.JobApplication{},
		&models.DiffusionWorkshop{},
		&models.Notification{},
		&models.NotificationRecipient{},
	)
}
