package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talenthub_backend/internal/models"
)

func TestHasPermission(t *testing.T) {
	// Students consume content but never author it.
	assert.True(t, HasPermission(models.UserRoleStudent, PermFormationsRead))
	assert.True(t, HasPermission(models.UserRoleStudent, PermTestsTake))
	assert.True(t, HasPermission(models.UserRoleStudent, PermJobOffersApply))
	assert.False(t, HasPermission(models.UserRoleStudent, PermCapsulesWrite))
	assert.False(t, HasPermission(models.UserRoleStudent, PermUsersManage))

	// Coaches publish capsules and run interviews.
	assert.True(t, HasPermission(models.UserRoleCoach, PermCapsulesWrite))
	assert.True(t, HasPermission(models.UserRoleCoach, PermInterviewsWrite))
	assert.False(t, HasPermission(models.UserRoleCoach, PermJobOffersWrite))
	assert.False(t, HasPermission(models.UserRoleCoach, PermFormationsWrite))

	// Enterprises own the hiring side.
	assert.True(t, HasPermission(models.UserRoleEnterprise, PermJobOffersWrite))
	assert.True(t, HasPermission(models.UserRoleEnterprise, PermApplicationsSet))
	assert.False(t, HasPermission(models.UserRoleEnterprise, PermTestsTake))

	// Admins manage the catalog and the user base.
	assert.True(t, HasPermission(models.UserRoleAdmin, PermFormationsWrite))
	assert.True(t, HasPermission(models.UserRoleAdmin, PermTestsWrite))
	assert.True(t, HasPermission(models.UserRoleAdmin, PermUsersManage))
	assert.True(t, HasPermission(models.UserRoleAdmin, PermNotificationsBroadcast))

	assert.False(t, HasPermission(models.UserRole("ghost"), PermFormationsRead))
}

func TestValidateRole(t *testing.T) {
	for _, role := range []models.UserRole{
		models.UserRoleStudent,
		models.UserRoleCoach,
		models.UserRoleEnterprise,
		models.UserRoleAdmin,
	} {
		assert.True(t, ValidateRole(role), string(role))
	}

	assert.False(t, ValidateRole(models.UserRole("superuser")))
	assert.False(t, ValidateRole(models.UserRole("")))
}
