package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/service"
)

// ImageFormField is the multipart field used by the local slot upload.
const ImageFormField = "file"

// ImageHandler serves the single-slot local image mode.
type ImageHandler struct {
	imageService service.ImageService
	logger       *zap.Logger
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(imageService service.ImageService, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{imageService: imageService, logger: logger}
}

// Upload handles POST /upload in local mode. The stored image is streamed back.
// @Summary Replace the local image
// @Tags local
// @Accept multipart/form-data
// @Produce octet-stream
// @Param file formData file true "Image to store"
// @Success 200 {file} binary "The stored image"
// @Failure 400 {object} ErrorResponse "No file uploaded"
// @Failure 500 {object} ErrorResponse "Write failure"
// @Router /upload [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile(ImageFormField)
	if err != nil {
		HandleError(c, h.logger, domain.ErrNoFile)
		return
	}
	defer func() { _ = file.Close() }()

	if err := h.imageService.Save(c.Request.Context(), header.Filename, file); err != nil {
		HandleError(c, h.logger, err)
		return
	}

	h.serve(c)
}

// Get handles GET /image
// @Summary Fetch the local image
// @Tags local
// @Produce octet-stream
// @Success 200 {file} binary "The stored image"
// @Failure 404 {object} ErrorResponse "Nothing uploaded yet"
// @Router /image [get]
func (h *ImageHandler) Get(c *gin.Context) {
	h.serve(c)
}

func (h *ImageHandler) serve(c *gin.Context) {
	rc, size, contentType, err := h.imageService.Open(c.Request.Context())
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	defer func() { _ = rc.Close() }()

	c.DataFromReader(http.StatusOK, size, contentType, rc, nil)
}
