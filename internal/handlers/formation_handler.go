package handlers

import (
	"net/http"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FormationHandler struct {
	*BaseHandler
	formationService services.FormationService
}

func NewFormationHandler(base *BaseHandler, formationService services.FormationService) *FormationHandler {
	return &FormationHandler{
		BaseHandler:      base,
		formationService: formationService,
	}
}

func (h *FormationHandler) RegisterRoutes(r *gin.RouterGroup) {
	formations := r.Group("/formations")
	formations.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermFormationsRead))
	{
		formations.GET("", h.List)
		formations.GET("/:formationId", h.Get)
		formations.GET("/:formationId/access", h.Access)
		formations.GET("/my", h.MyFormations)
	}

	pay := r.Group("/formations")
	pay.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermFormationsPay))
	{
		pay.POST("/pay", h.Pay)
		pay.GET("/payments", h.ListPayments)
	}

	complete := r.Group("/formations")
	complete.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermFormationsComplete))
	{
		complete.POST("/:formationId/complete", h.Complete)
	}

	admin := r.Group("/formations")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermFormationsWrite))
	{
		admin.POST("", h.Create)
		admin.PUT("/:formationId", h.Update)
		admin.DELETE("/:formationId", h.Delete)
	}
}

func (h *FormationHandler) List(c *gin.Context) {
	var req dto.ListFormationsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	formations, err := h.formationService.List(h.GetDB(c), &req, middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, formations)
}

func (h *FormationHandler) Get(c *gin.Context) {
	formation, err := h.formationService.Get(h.GetDB(c), c.Param("formationId"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, formation)
}

func (h *FormationHandler) Access(c *gin.Context) {
	access, err := h.formationService.Access(h.GetDB(c), c.Param("formationId"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, access)
}

func (h *FormationHandler) Create(c *gin.Context) {
	var req dto.CreateFormationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	formation, err := h.formationService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, formation)
}

func (h *FormationHandler) Update(c *gin.Context) {
	var req dto.UpdateFormationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	formation, err := h.formationService.Update(h.GetDB(c), c.Param("formationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, formation)
}

func (h *FormationHandler) Delete(c *gin.Context) {
	if err := h.formationService.Delete(h.GetDB(c), c.Param("formationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Formation deleted"})
}

func (h *FormationHandler) Pay(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PayFormationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payment, err := h.formationService.Pay(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *FormationHandler) ListPayments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	payments, err := h.formationService.ListPayments(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *FormationHandler) Complete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	completion, err := h.formationService.Complete(h.GetDB(c), userID, c.Param("formationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, completion)
}

func (h *FormationHandler) MyFormations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	completions, err := h.formationService.MyFormations(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, completions)
}
