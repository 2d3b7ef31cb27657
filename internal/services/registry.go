package services

import (
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/storage"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	FormationService    FormationService
	CapsuleService      CapsuleService
	TestService         TestService
	InterviewService    InterviewService
	JobOfferService     JobOfferService
	WorkshopService     WorkshopService
	NotificationService NotificationService
	SearchService       SearchService
	EmailProvider       email.Provider
	Storage             storage.Storage
}
