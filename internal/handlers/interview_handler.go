package handlers

import (
	"net/http"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	interviews := r.Group("/interviews")
	interviews.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermInterviewsRead))
	{
		interviews.GET("", h.List)
		interviews.GET("/:interviewId", h.Get)
	}

	creators := r.Group("/interviews")
	creators.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermInterviewsWrite))
	{
		creators.POST("", h.Create)
		creators.PUT("/:interviewId", h.Update)
		creators.PUT("/:interviewId/status", h.UpdateStatus)
		creators.DELETE("/:interviewId", h.Delete)
		creators.GET("/:interviewId/candidates", h.ListCandidates)
	}

	candidates := r.Group("/interviews")
	candidates.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermInterviewsApply))
	{
		candidates.POST("/:interviewId/apply", h.Apply)
		candidates.GET("/applications/my", h.MyApplications)
	}
}

func (h *InterviewHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	interviews, err := h.interviewService.List(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviews)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	interview, err := h.interviewService.Get(h.GetDB(c), c.Param("interviewId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Update(h.GetDB(c), c.Param("interviewId"), userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.UpdateStatus(h.GetDB(c), c.Param("interviewId"), userID, middleware.GetUserRole(c), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.interviewService.Delete(h.GetDB(c), c.Param("interviewId"), userID, middleware.GetUserRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interview deleted"})
}

func (h *InterviewHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.interviewService.Apply(h.GetDB(c), c.Param("interviewId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application recorded"})
}

func (h *InterviewHandler) ListCandidates(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	candidates, err := h.interviewService.ListCandidates(h.GetDB(c), c.Param("interviewId"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *InterviewHandler) MyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interviews, err := h.interviewService.MyApplications(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interviews)
}
