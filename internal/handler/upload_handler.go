package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/middleware"
	"cidgate/internal/service"
)

// UploadFormField is the multipart field carrying the image.
const UploadFormField = "image"

// UploadHandler handles gateway uploads and CID lookups.
type UploadHandler struct {
	uploadService service.UploadService
	maxBytes      int64
	logger        *zap.Logger
}

// NewUploadHandler creates a new UploadHandler. maxBytes of zero disables the size check.
func NewUploadHandler(uploadService service.UploadService, maxBytes int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, maxBytes: maxBytes, logger: logger}
}

// Upload handles POST /upload
// @Summary Upload an image
// @Description Forward the file to the object store and record its CID under the caller's email
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image to upload"
// @Success 200 {object} UploadResponse "Stored"
// @Failure 400 {object} ErrorResponse "No file uploaded"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Storage or persistence failure"
// @Security BearerAuth
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	upload, err := readUpload(c.Request, h.maxBytes)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	record, err := h.uploadService.Upload(c.Request.Context(), identity, upload)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{Message: "File uploaded successfully!", CID: record.CID})
}

// ListByEmail handles GET /user-cids/:email
// @Summary Find uploads by email
// @Description Return every upload record whose email contains the given text, case-insensitively
// @Tags uploads
// @Produce json
// @Param email path string true "Email fragment"
// @Success 200 {array} domain.UploadRecord "Matching records, possibly empty"
// @Failure 500 {object} ErrorResponse "Lookup failure"
// @Router /user-cids/{email} [get]
func (h *UploadHandler) ListByEmail(c *gin.Context) {
	records, err := h.uploadService.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// readUpload streams the multipart body and buffers the first file part
// named UploadFormField in memory. Other parts are skipped without being
// stored, so nothing is spooled to disk.
func readUpload(r *http.Request, maxBytes int64) (*domain.IncomingUpload, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, domain.ErrNoFile
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrNoFile
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrNoFile, err)
		}
		if part.FormName() != UploadFormField || part.FileName() == "" {
			_ = part.Close()
			continue
		}

		upload, err := bufferPart(part, maxBytes)
		_ = part.Close()
		return upload, err
	}
}

func bufferPart(part *multipart.Part, maxBytes int64) (*domain.IncomingUpload, error) {
	var src io.Reader = part
	if maxBytes > 0 {
		src = io.LimitReader(part, maxBytes+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	detected := mimetype.Detect(data)
	contentType := detected.String()
	if detected.Is("application/octet-stream") {
		if declared := part.Header.Get("Content-Type"); declared != "" {
			contentType = declared
		}
	}

	return &domain.IncomingUpload{
		OriginalName: part.FileName(),
		Bytes:        data,
		ContentType:  contentType,
	}, nil
}
