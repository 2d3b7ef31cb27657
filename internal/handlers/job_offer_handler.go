package handlers

import (
	"net/http"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobOfferHandler struct {
	*BaseHandler
	jobOfferService services.JobOfferService
}

func NewJobOfferHandler(base *BaseHandler, jobOfferService services.JobOfferService) *JobOfferHandler {
	return &JobOfferHandler{
		BaseHandler:     base,
		jobOfferService: jobOfferService,
	}
}

func (h *JobOfferHandler) RegisterRoutes(r *gin.RouterGroup) {
	offers := r.Group("/job-offers")
	offers.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermJobOffersRead))
	{
		offers.GET("", h.List)
		offers.GET("/:offerId", h.Get)
	}

	owners := r.Group("/job-offers")
	owners.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermJobOffersWrite))
	{
		owners.POST("", h.Create)
		owners.GET("/my", h.ListMine)
		owners.PUT("/:offerId", h.Update)
		owners.DELETE("/:offerId", h.Delete)
		owners.GET("/:offerId/applications", h.ListApplications)
	}

	applicants := r.Group("/job-offers")
	applicants.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermJobOffersApply))
	{
		applicants.POST("/:offerId/apply", h.Apply)
		applicants.GET("/applications/my", h.MyApplications)
	}

	decisions := r.Group("/job-applications")
	decisions.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermApplicationsSet))
	{
		decisions.PUT("/:applicationId/status", h.SetApplicationStatus)
	}
}

func (h *JobOfferHandler) List(c *gin.Context) {
	var req dto.ListJobOffersRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	offers, err := h.jobOfferService.List(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *JobOfferHandler) Get(c *gin.Context) {
	offer, err := h.jobOfferService.Get(h.GetDB(c), c.Param("offerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *JobOfferHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	offer, err := h.jobOfferService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func (h *JobOfferHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	offer, err := h.jobOfferService.Update(h.GetDB(c), c.Param("offerId"), userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *JobOfferHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobOfferService.Delete(h.GetDB(c), c.Param("offerId"), userID, middleware.GetUserRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job offer deleted"})
}

func (h *JobOfferHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	offers, err := h.jobOfferService.ListMine(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *JobOfferHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyJobOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.jobOfferService.Apply(h.GetDB(c), c.Param("offerId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *JobOfferHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.jobOfferService.ListApplications(h.GetDB(c), c.Param("offerId"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *JobOfferHandler) MyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.jobOfferService.MyApplications(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *JobOfferHandler) SetApplicationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.jobOfferService.SetApplicationStatus(h.GetDB(c), c.Param("applicationId"), userID, middleware.GetUserRole(c), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}
