package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/models"
	"talenthub_backend/internal/services/dto"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Email:    "student@test.com",
		Password: "super_password123",
		Role:     models.UserRoleStudent,
		Name:     "Test Student",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     models.UserRole("superuser"),
		Name:     "X",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.Contains(t, vErr.Errors, "role")
	assert.Contains(t, vErr.Errors, "name")
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])
}

func TestEnterpriseRequiresCompanyName(t *testing.T) {
	v := New()

	req := &dto.RegisterRequest{
		Email:    "company@test.com",
		Password: "super_password123",
		Role:     models.UserRoleEnterprise,
		Name:     "Hiring Manager",
	}
	err := v.Validate(req)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "company_name")

	req.CompanyName = "Acme"
	assert.NoError(t, v.Validate(req))
}

func TestCoachRequiresSpecialty(t *testing.T) {
	v := New()

	req := &dto.RegisterRequest{
		Email:    "coach@test.com",
		Password: "super_password123",
		Role:     models.UserRoleCoach,
		Name:     "Coach",
	}
	err := v.Validate(req)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "specialty")

	req.Specialty = "Backend Engineering"
	assert.NoError(t, v.Validate(req))
}

func TestCustomEnumRules(t *testing.T) {
	v := New()

	err := v.Validate(&dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatusAccepted})
	assert.NoError(t, err)

	err = v.Validate(&dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatus("maybe")})
	assert.Error(t, err)

	err = v.Validate(&dto.UpdateInterviewStatusRequest{Status: models.InterviewStatus("sometime")})
	assert.Error(t, err)
}

func TestQuestionOptionsBounds(t *testing.T) {
	v := New()

	err := v.Validate(&dto.CreateQuestionRequest{
		Text:    "Only one option",
		Options: []string{"lonely"},
	})
	assert.Error(t, err)

	err = v.Validate(&dto.CreateQuestionRequest{
		Text:    "Two options",
		Options: []string{"yes", "no"},
	})
	assert.NoError(t, err)
}
