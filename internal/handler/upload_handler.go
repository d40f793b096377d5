package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/logger"
	"blog-platform/internal/middleware"
	"blog-platform/internal/storage"
)

// UploadHandler handles image uploads for featured images.
type UploadHandler struct {
	store storage.ImageStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload handles POST /api/v1/uploads. Accepts a multipart "image" field and
// returns the opaque ref to attach to an article.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		respondError(c, http.StatusBadRequest, "file must be an image")
		return
	}

	ref, err := h.store.Save(c.Request.Context(), header.Filename, file)
	if err != nil {
		logger.Error("failed to store image",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		respondError(c, http.StatusInternalServerError, "failed to store image")
		return
	}

	respond(c, http.StatusCreated, "image uploaded", gin.H{"ref": ref})
}
