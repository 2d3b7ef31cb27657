package handlers

import (
	"net/http"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	*BaseHandler
	testService services.TestService
}

func NewTestHandler(base *BaseHandler, testService services.TestService) *TestHandler {
	return &TestHandler{
		BaseHandler: base,
		testService: testService,
	}
}

func (h *TestHandler) RegisterRoutes(r *gin.RouterGroup) {
	tests := r.Group("/tests")
	tests.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermTestsRead))
	{
		tests.GET("", h.List)
		tests.GET("/:testId", h.Get)
		tests.GET("/:testId/questions", h.ListQuestions)
	}

	take := r.Group("/tests")
	take.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermTestsTake))
	{
		take.POST("/:testId/submit", h.Submit)
		take.GET("/attempts/my", h.MyAttempts)
	}

	admin := r.Group("/tests")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermTestsWrite))
	{
		admin.POST("", h.Create)
		admin.PUT("/:testId", h.Update)
		admin.DELETE("/:testId", h.Delete)
		admin.POST("/:testId/questions", h.AddQuestion)
		admin.PUT("/questions/:questionId", h.UpdateQuestion)
		admin.DELETE("/questions/:questionId", h.DeleteQuestion)
	}
}

// List returns active tests. Admins may pass with_deleted=1 to audit
// soft-deleted tests.
func (h *TestHandler) List(c *gin.Context) {
	withDeleted := c.Query("with_deleted") == "1" &&
		auth.HasPermission(middleware.GetUserRole(c), auth.PermTestsWrite)

	tests, err := h.testService.List(h.GetDB(c), withDeleted)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (h *TestHandler) Get(c *gin.Context) {
	test, err := h.testService.Get(h.GetDB(c), c.Param("testId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *TestHandler) Create(c *gin.Context) {
	var req dto.CreateTestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	test, err := h.testService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, test)
}

func (h *TestHandler) Update(c *gin.Context) {
	var req dto.UpdateTestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	test, err := h.testService.Update(h.GetDB(c), c.Param("testId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *TestHandler) Delete(c *gin.Context) {
	if err := h.testService.Delete(h.GetDB(c), c.Param("testId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test deleted"})
}

func (h *TestHandler) ListQuestions(c *gin.Context) {
	questions, err := h.testService.ListQuestions(h.GetDB(c), c.Param("testId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *TestHandler) AddQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	question, err := h.testService.AddQuestion(h.GetDB(c), c.Param("testId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *TestHandler) UpdateQuestion(c *gin.Context) {
	var req dto.UpdateQuestionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	question, err := h.testService.UpdateQuestion(h.GetDB(c), c.Param("questionId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *TestHandler) DeleteQuestion(c *gin.Context) {
	if err := h.testService.DeleteQuestion(h.GetDB(c), c.Param("questionId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}

func (h *TestHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitTestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.testService.Submit(h.GetDB(c), userID, c.Param("testId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TestHandler) MyAttempts(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	attempts, err := h.testService.MyAttempts(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}
