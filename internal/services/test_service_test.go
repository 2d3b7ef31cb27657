package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

func newTestService() services.TestService {
	return services.NewTestService(
		repositories.NewTestRepository(),
		repositories.NewUserRepository(),
	)
}

// createTestWithQuestions builds a test where every question's correct answer
// is option 0.
func createTestWithQuestions(t *testing.T, db *gorm.DB, svc services.TestService, questionCount int) (*dto.TestResponse, []string) {
	t.Helper()

	test, err := svc.Create(db, &dto.CreateTestRequest{Title: "Recruiting Basics", Category: "hr"})
	require.NoError(t, err)

	questionIDs := make([]string, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		q, err := svc.AddQuestion(db, test.ID, &dto.CreateQuestionRequest{
			Text:               "Pick the first option",
			Options:            []string{"right", "wrong", "also wrong"},
			CorrectAnswerIndex: 0,
			Position:           i,
		})
		require.NoError(t, err)
		questionIDs = append(questionIDs, q.ID)
	}
	return test, questionIDs
}

func TestSubmitScoresAndAwardsPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	test, questionIDs := createTestWithQuestions(t, db, svc, 2)

	// One correct answer out of two.
	result, err := svc.Submit(db, student.ID, test.ID, &dto.SubmitTestRequest{
		Answers: map[string]int{questionIDs[0]: 0, questionIDs[1]: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 10, result.PointsAwarded)
	assert.Equal(t, 1, result.BestScore)

	// Full score on the retake pays only for the improvement.
	result, err = svc.Submit(db, student.ID, test.ID, &dto.SubmitTestRequest{
		Answers: map[string]int{questionIDs[0]: 0, questionIDs[1]: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 10, result.PointsAwarded)
	assert.Equal(t, 2, result.BestScore)

	// A worse retake pays nothing and keeps the best score.
	result, err = svc.Submit(db, student.ID, test.ID, &dto.SubmitTestRequest{
		Answers: map[string]int{questionIDs[0]: 1, questionIDs[1]: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.PointsAwarded)
	assert.Equal(t, 2, result.BestScore)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", student.ID).Error)
	assert.Equal(t, 20, user.Points)

	attempts, err := svc.MyAttempts(db, student.ID)
	require.NoError(t, err)
	assert.Len(t, attempts, 3)
}

func TestSubmitEmptyTestRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	test, err := svc.Create(db, &dto.CreateTestRequest{Title: "Empty Test"})
	require.NoError(t, err)

	_, err = svc.Submit(db, student.ID, test.ID, &dto.SubmitTestRequest{Answers: map[string]int{"x": 0}})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestAddQuestionValidatesCorrectIndex(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	test, err := svc.Create(db, &dto.CreateTestRequest{Title: "Strict Test"})
	require.NoError(t, err)

	_, err = svc.AddQuestion(db, test.ID, &dto.CreateQuestionRequest{
		Text:               "Out of range answer",
		Options:            []string{"a", "b"},
		CorrectAnswerIndex: 5,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestQuestionResponseHidesCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	test, _ := createTestWithQuestions(t, db, svc, 1)

	questions, err := svc.ListQuestions(db, test.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Len(t, questions[0].Options, 3)
}

func TestDeleteTestIsSoft(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	test, questionIDs := createTestWithQuestions(t, db, svc, 1)

	_, err := svc.Submit(db, student.ID, test.ID, &dto.SubmitTestRequest{
		Answers: map[string]int{questionIDs[0]: 0},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(db, test.ID))

	_, err = svc.Get(db, test.ID)
	require.Error(t, err)

	visible, err := svc.List(db, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.List(db, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Deleted)

	// Past attempts keep resolving the deleted test.
	attempts, err := svc.MyAttempts(db, student.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, test.Title, attempts[0].TestTitle)
}
