package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/middleware"
	"github.com/devforum/devforum/internal/pkg/apperrors"
	"github.com/devforum/devforum/internal/pkg/filestorage"
)

// UploadController handles multipart image uploads. Clients upload the
// file first and reference the returned URL in resource bodies; the
// JSON create/update endpoints also accept inline base64 data-URLs.
type UploadController struct {
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage, logger zerolog.Logger) *UploadController {
	return &UploadController{
		storage: storage,
		logger:  logger,
	}
}

var uploadFolders = map[string]bool{
	"avatars":  true,
	"projects": true,
	"blogs":    true,
	"events":   true,
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadImage stores a multipart image and returns its public URL
// @Summary Upload an image
// @Description Accepts a multipart image file and returns the URL to reference it from resource bodies
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (png, jpg, jpeg, gif, webp)"
// @Param folder formData string false "Target folder: avatars, projects, blogs or events"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "Stored file URL"
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported type"
// @Router /uploads [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("A 'file' form field is required"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !imageExtensions[ext] {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Unsupported image type: "+ext))
		return
	}

	folder := ctx.DefaultPostForm("folder", "projects")
	if !uploadFolders[folder] {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Unknown upload folder: "+folder))
		return
	}

	url, err := c.storage.SaveFileWithPath(fileHeader, folder)
	if err != nil {
		c.logger.Error().Err(err).Str("folder", folder).Msg("Failed to store uploaded file")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.UploadResponse{URL: url}))
}
