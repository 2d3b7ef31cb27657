package services

import (
	"time"

	"talenthub_backend/internal/config"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TestService interface {
	Create(db *gorm.DB, req *dto.CreateTestRequest) (*dto.TestResponse, error)
	Update(db *gorm.DB, testID string, req *dto.UpdateTestRequest) (*dto.TestResponse, error)
	Delete(db *gorm.DB, testID string) error
	Get(db *gorm.DB, testID string) (*dto.TestResponse, error)
	List(db *gorm.DB, withDeleted bool) ([]*dto.TestResponse, error)

	AddQuestion(db *gorm.DB, testID string, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(db *gorm.DB, questionID string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(db *gorm.DB, questionID string) error
	ListQuestions(db *gorm.DB, testID string) ([]*dto.QuestionResponse, error)

	Submit(db *gorm.DB, userID, testID string, req *dto.SubmitTestRequest) (*dto.TestResultResponse, error)
	MyAttempts(db *gorm.DB, userID string) ([]*dto.AttemptResponse, error)
}

type TestServiceImpl struct {
	testRepo repositories.TestRepository
	userRepo repositories.UserRepository
}

func NewTestService(
	testRepo repositories.TestRepository,
	userRepo repositories.UserRepository,
) TestService {
	return &TestServiceImpl{
		testRepo: testRepo,
		userRepo: userRepo,
	}
}

func (s *TestServiceImpl) Create(db *gorm.DB, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	test := &models.Test{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
	}
	if err := s.testRepo.Create(db, test); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTestResponse(test, 0), nil
}

func (s *TestServiceImpl) Update(db *gorm.DB, testID string, req *dto.UpdateTestRequest) (*dto.TestResponse, error) {
	test, err := s.findTest(db, testID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.Category != nil {
		test.Category = *req.Category
	}
	if req.DurationMinutes != nil {
		test.DurationMinutes = *req.DurationMinutes
	}

	if err := s.testRepo.Update(db, test); err != nil {
		return nil, apperrors.InternalError(err)
	}

	questions, _ := s.testRepo.FindQuestionsByTest(db, testID)
	return dto.NewTestResponse(test, len(questions)), nil
}

// Delete soft-deletes the test and its questions; past attempts keep their
// scores.
func (s *TestServiceImpl) Delete(db *gorm.DB, testID string) error {
	if err := s.testRepo.Delete(db, testID); err != nil {
		if apperrors.Is(err, repositories.ErrTestNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TestServiceImpl) Get(db *gorm.DB, testID string) (*dto.TestResponse, error) {
	test, err := s.findTest(db, testID)
	if err != nil {
		return nil, err
	}
	questions, err := s.testRepo.FindQuestionsByTest(db, testID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTestResponse(test, len(questions)), nil
}

func (s *TestServiceImpl) List(db *gorm.DB, withDeleted bool) ([]*dto.TestResponse, error) {
	tests, err := s.testRepo.FindAll(db, withDeleted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.TestResponse, 0, len(tests))
	for i := range tests {
		questions, _ := s.testRepo.FindQuestionsByTest(db, tests[i].ID)
		items = append(items, dto.NewTestResponse(&tests[i], len(questions)))
	}
	return items, nil
}

func (s *TestServiceImpl) AddQuestion(db *gorm.DB, testID string, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := s.findTest(db, testID); err != nil {
		return nil, err
	}

	if req.CorrectAnswerIndex >= len(req.Options) {
		return nil, apperrors.ValidationError(map[string]string{"correct_answer_index": "out of range"})
	}

	question := &models.Question{
		TestID:             testID,
		Text:               req.Text,
		CorrectAnswerIndex: req.CorrectAnswerIndex,
		Position:           req.Position,
	}
	question.SetOptions(req.Options)

	if err := s.testRepo.CreateQuestion(db, question); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewQuestionResponse(question), nil
}

func (s *TestServiceImpl) UpdateQuestion(db *gorm.DB, questionID string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.findQuestion(db, questionID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Options != nil {
		question.SetOptions(req.Options)
	}
	if req.CorrectAnswerIndex != nil {
		question.CorrectAnswerIndex = *req.CorrectAnswerIndex
	}
	if req.Position != nil {
		question.Position = *req.Position
	}

	if question.CorrectAnswerIndex >= len(question.GetOptions()) {
		return nil, apperrors.ValidationError(map[string]string{"correct_answer_index": "out of range"})
	}

	if err := s.testRepo.UpdateQuestion(db, question); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewQuestionResponse(question), nil
}

func (s *TestServiceImpl) DeleteQuestion(db *gorm.DB, questionID string) error {
	if err := s.testRepo.DeleteQuestion(db, questionID); err != nil {
		if apperrors.Is(err, repositories.ErrQuestionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TestServiceImpl) ListQuestions(db *gorm.DB, testID string) ([]*dto.QuestionResponse, error) {
	if _, err := s.findTest(db, testID); err != nil {
		return nil, err
	}

	questions, err := s.testRepo.FindQuestionsByTest(db, testID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		items = append(items, dto.NewQuestionResponse(&questions[i]))
	}
	return items, nil
}

// Submit scores the answers against the correct indexes. Retakes are allowed;
// points accrue only for the improvement over the user's best prior score.
func (s *TestServiceImpl) Submit(db *gorm.DB, userID, testID string, req *dto.SubmitTestRequest) (*dto.TestResultResponse, error) {
	if _, err := s.findTest(db, testID); err != nil {
		return nil, err
	}

	questions, err := s.testRepo.FindQuestionsByTest(db, testID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(questions) == 0 {
		return nil, apperrors.ErrInvalidOperation("test", "Test has no questions")
	}

	score := 0
	for i := range questions {
		answer, ok := req.Answers[questions[i].ID]
		if ok && answer == questions[i].CorrectAnswerIndex {
			score++
		}
	}

	previousBest, err := s.testRepo.BestScore(db, userID, testID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	points := 0
	if score > previousBest {
		points = (score - previousBest) * config.GetConfig().Points.PerCorrectAnswer
	}

	attempt := &models.TestAttempt{
		UserID:        userID,
		TestID:        testID,
		Score:         score,
		Total:         len(questions),
		PointsAwarded: points,
	}
	if err := s.testRepo.CreateAttempt(db, attempt); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if points > 0 {
		if err := s.userRepo.AddPoints(db, userID, points); err != nil {
			logger.WithError(err).Error("failed to award test points", "user_id", userID)
		}
	}

	best := previousBest
	if score > best {
		best = score
	}

	return &dto.TestResultResponse{
		TestID:        testID,
		Score:         score,
		Total:         len(questions),
		PointsAwarded: points,
		BestScore:     best,
		SubmittedAt:   time.Now(),
	}, nil
}

func (s *TestServiceImpl) MyAttempts(db *gorm.DB, userID string) ([]*dto.AttemptResponse, error) {
	attempts, err := s.testRepo.ListAttemptsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		item := &dto.AttemptResponse{
			ID:            attempts[i].ID,
			TestID:        attempts[i].TestID,
			Score:         attempts[i].Score,
			Total:         attempts[i].Total,
			PointsAwarded: attempts[i].PointsAwarded,
			CreatedAt:     attempts[i].CreatedAt,
		}
		// Deleted tests still resolve for attempt history.
		if test, err := s.testRepo.FindByID(db.Unscoped(), attempts[i].TestID); err == nil {
			item.TestTitle = test.Title
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *TestServiceImpl) findTest(db *gorm.DB, testID string) (*models.Test, error) {
	test, err := s.testRepo.FindByID(db, testID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return test, nil
}

func (s *TestServiceImpl) findQuestion(db *gorm.DB, questionID string) (*models.Question, error) {
	question, err := s.testRepo.FindQuestionByID(db, questionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrQuestionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return question, nil
}
