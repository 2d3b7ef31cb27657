package auth

import (
	"talenthub_backend/internal/models"
)

// Permission names follow the "resource:action" convention. The table below is
// the single authorization source consulted at the gateway; ownership checks
// stay in services where the record is loaded anyway.
const (
	PermFormationsRead     = "formations:read"
	PermFormationsWrite    = "formations:write"
	PermFormationsPay      = "formations:pay"
	PermFormationsComplete = "formations:complete"

	PermCapsulesRead  = "capsules:read"
	PermCapsulesWrite = "capsules:write"

	PermTestsRead  = "tests:read"
	PermTestsTake  = "tests:take"
	PermTestsWrite = "tests:write"

	PermInterviewsRead  = "interviews:read"
	PermInterviewsWrite = "interviews:write"
	PermInterviewsApply = "interviews:apply"

	PermJobOffersRead   = "job_offers:read"
	PermJobOffersWrite  = "job_offers:write"
	PermJobOffersApply  = "job_offers:apply"
	PermApplicationsSet = "job_applications:decide"

	PermWorkshopsRead  = "workshops:read"
	PermWorkshopsWrite = "workshops:write"

	PermNotificationsRead      = "notifications:read"
	PermNotificationsBroadcast = "notifications:broadcast"

	PermUsersManage = "users:manage"
	PermSearchRead  = "search:read"
	PermFilesUpload = "files:upload"
)

var commonPermissions = []string{
	PermFormationsRead,
	PermCapsulesRead,
	PermTestsRead,
	PermInterviewsRead,
	PermJobOffersRead,
	PermWorkshopsRead,
	PermNotificationsRead,
	PermSearchRead,
	PermFilesUpload,
}

// Permissions maps each role to its allowed actions.
var Permissions = map[models.UserRole][]string{
	models.UserRoleStudent: append([]string{
		PermFormationsPay,
		PermFormationsComplete,
		PermTestsTake,
		PermInterviewsApply,
		PermJobOffersApply,
	}, commonPermissions...),

	models.UserRoleCoach: append([]string{
		PermFormationsPay,
		PermFormationsComplete,
		PermCapsulesWrite,
		PermInterviewsWrite,
		PermWorkshopsWrite,
	}, commonPermissions...),

	models.UserRoleEnterprise: append([]string{
		PermJobOffersWrite,
		PermApplicationsSet,
		PermInterviewsWrite,
		PermWorkshopsWrite,
	}, commonPermissions...),

	models.UserRoleAdmin: append([]string{
		PermFormationsWrite,
		PermFormationsPay,
		PermFormationsComplete,
		PermCapsulesWrite,
		PermTestsWrite,
		PermTestsTake,
		PermInterviewsWrite,
		PermInterviewsApply,
		PermJobOffersWrite,
		PermJobOffersApply,
		PermApplicationsSet,
		PermWorkshopsWrite,
		PermNotificationsBroadcast,
		PermUsersManage,
	}, commonPermissions...),
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role models.UserRole, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the claims belong to an admin.
func IsAdmin(claims *Claims) bool {
	return models.UserRole(claims.Role) == models.UserRoleAdmin
}

// ValidateRole rejects roles outside the closed set.
func ValidateRole(role models.UserRole) bool {
	switch role {
	case models.UserRoleStudent, models.UserRoleCoach, models.UserRoleEnterprise, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}
