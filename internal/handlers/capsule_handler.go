package handlers

import (
	"net/http"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CapsuleHandler struct {
	*BaseHandler
	capsuleService services.CapsuleService
}

func NewCapsuleHandler(base *BaseHandler, capsuleService services.CapsuleService) *CapsuleHandler {
	return &CapsuleHandler{
		BaseHandler:    base,
		capsuleService: capsuleService,
	}
}

func (h *CapsuleHandler) RegisterRoutes(r *gin.RouterGroup) {
	capsules := r.Group("/capsules")
	capsules.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermCapsulesRead))
	{
		capsules.GET("", h.List)
		capsules.GET("/:capsuleId", h.Get)
	}

	authors := r.Group("/capsules")
	authors.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermCapsulesWrite))
	{
		authors.POST("", h.Create)
		authors.GET("/my", h.ListMine)
		authors.PUT("/:capsuleId", h.Update)
		authors.DELETE("/:capsuleId", h.Delete)
	}
}

func (h *CapsuleHandler) List(c *gin.Context) {
	var req dto.ListCapsulesRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	capsules, err := h.capsuleService.List(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, capsules)
}

func (h *CapsuleHandler) Get(c *gin.Context) {
	capsule, err := h.capsuleService.Get(h.GetDB(c), c.Param("capsuleId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, capsule)
}

func (h *CapsuleHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCapsuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	capsule, err := h.capsuleService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, capsule)
}

func (h *CapsuleHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCapsuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	capsule, err := h.capsuleService.Update(h.GetDB(c), c.Param("capsuleId"), userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, capsule)
}

func (h *CapsuleHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.capsuleService.Delete(h.GetDB(c), c.Param("capsuleId"), userID, middleware.GetUserRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Capsule deleted"})
}

func (h *CapsuleHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	capsules, err := h.capsuleService.ListMine(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, capsules)
}
