package models

type UserRole string
type ApplicationStatus string
type InterviewStatus string
type PaymentStatus string
type WorkshopType string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleCoach      UserRole = "coach"
	UserRoleEnterprise UserRole = "enterprise"
	UserRoleAdmin      UserRole = "admin"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	InterviewStatusPending   InterviewStatus = "pending"
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	WorkshopTypeWebinar    WorkshopType = "webinar"
	WorkshopTypeWorkshop   WorkshopType = "workshop"
	WorkshopTypeConference WorkshopType = "conference"
)
