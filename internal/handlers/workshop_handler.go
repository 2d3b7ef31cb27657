package handlers

import (
	"net/http"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkshopHandler struct {
	*BaseHandler
	workshopService services.WorkshopService
}

func NewWorkshopHandler(base *BaseHandler, workshopService services.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{
		BaseHandler:     base,
		workshopService: workshopService,
	}
}

func (h *WorkshopHandler) RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	workshops.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermWorkshopsRead))
	{
		workshops.GET("", h.List)
		workshops.GET("/:workshopId", h.Get)
	}

	owners := r.Group("/workshops")
	owners.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermWorkshopsWrite))
	{
		owners.POST("", h.Create)
		owners.PUT("/:workshopId", h.Update)
		owners.DELETE("/:workshopId", h.Delete)
	}
}

func (h *WorkshopHandler) List(c *gin.Context) {
	var req dto.ListWorkshopsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	workshops, err := h.workshopService.List(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workshops)
}

func (h *WorkshopHandler) Get(c *gin.Context) {
	workshop, err := h.workshopService.Get(h.GetDB(c), c.Param("workshopId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workshop)
}

func (h *WorkshopHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkshopRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	workshop, err := h.workshopService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workshop)
}

func (h *WorkshopHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkshopRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	workshop, err := h.workshopService.Update(h.GetDB(c), c.Param("workshopId"), userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workshop)
}

func (h *WorkshopHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.workshopService.Delete(h.GetDB(c), c.Param("workshopId"), userID, middleware.GetUserRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workshop deleted"})
}
