package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/config"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/storage"
	"talenthub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler uploads avatars, formation covers and CVs, and serves stored
// files back.
type FileHandler struct {
	*BaseHandler
	storage          storage.Storage
	userService      services.UserService
	formationService services.FormationService
}

func NewFileHandler(
	base *BaseHandler,
	store storage.Storage,
	userService services.UserService,
	formationService services.FormationService,
) *FileHandler {
	return &FileHandler{
		BaseHandler:      base,
		storage:          store,
		userService:      userService,
		formationService: formationService,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	{
		files.GET("/*filePath", h.ServeFile)
	}

	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermFilesUpload))
	{
		uploads.POST("/avatar", h.UploadAvatar)
		uploads.POST("/cv", h.UploadCV)
	}

	formationUploads := r.Group("/uploads")
	formationUploads.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermFormationsWrite))
	{
		formationUploads.POST("/formations/:formationId/image", h.UploadFormationImage)
	}
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filePath"), "/")

	reader, err := h.storage.Get(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNotFound(err))
		return
	}
	defer reader.Close()

	if size, err := h.storage.GetSize(c.Request.Context(), path); err == nil {
		c.Header("Content-Length", strconv.FormatInt(size, 10))
	}
	c.Header("Cache-Control", "public, max-age=86400")

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(path)))
	} else {
		c.Header("Content-Disposition", "inline")
	}

	if _, err := io.Copy(c.Writer, reader); err != nil {
		c.Error(err)
	}
}

func (h *FileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	path, ok := h.saveUpload(c, "avatars/"+userID, imageTypes)
	if !ok {
		return
	}

	// The bare storage key goes to the database; ImageURL adds the public
	// prefix on read.
	user, err := h.userService.SetAvatar(h.GetDB(c), userID, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *FileHandler) UploadCV(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	path, ok := h.saveUpload(c, "cvs/"+userID, documentTypes)
	if !ok {
		return
	}

	url, err := h.storage.GetURL(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": url})
}

func (h *FileHandler) UploadFormationImage(c *gin.Context) {
	formationID := c.Param("formationId")

	path, ok := h.saveUpload(c, "formations/"+formationID, imageTypes)
	if !ok {
		return
	}

	if err := h.formationService.SetImage(h.GetDB(c), formationID, path); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	url, err := h.storage.GetURL(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": url})
}

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var documentTypes = map[string]bool{
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// saveUpload validates the multipart file against size and type limits and
// stores it under prefix with a random name. Returns the storage path.
func (h *FileHandler) saveUpload(c *gin.Context, prefix string, allowed map[string]bool) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return "", false
	}

	cfg := config.GetConfig()
	if cfg.Upload.MaxSize > 0 && fileHeader.Size > cfg.Upload.MaxSize {
		apperrors.HandleError(c, apperrors.ErrFileTooLarge)
		return "", false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowed[contentType] {
		apperrors.HandleError(c, apperrors.ErrInvalidFileType)
		return "", false
	}
	if len(cfg.Upload.AllowedTypes) > 0 && !contains(cfg.Upload.AllowedTypes, contentType) {
		apperrors.HandleError(c, apperrors.ErrInvalidFileType)
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return "", false
	}
	defer file.Close()

	path := prefix + "/" + uuid.NewString() + filepath.Ext(fileHeader.Filename)
	if err := h.storage.Save(c.Request.Context(), path, file, contentType); err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return "", false
	}
	return path, true
}
