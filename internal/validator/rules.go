package validator

import (
	"log"

	"talenthub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validation tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-interview-status", validateInterviewStatus)
	mustRegister("is-workshop-type", validateWorkshopType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is 'required's job
	}
	switch models.UserRole(value) {
	case models.UserRoleStudent, models.UserRoleCoach, models.UserRoleEnterprise, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

func validateInterviewStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.InterviewStatus(value) {
	case models.InterviewStatusPending, models.InterviewStatusScheduled,
		models.InterviewStatusCompleted, models.InterviewStatusCancelled:
		return true
	default:
		return false
	}
}

func validateWorkshopType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.WorkshopType(value) {
	case models.WorkshopTypeWebinar, models.WorkshopTypeWorkshop, models.WorkshopTypeConference:
		return true
	default:
		return false
	}
}
