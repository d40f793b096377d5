package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/generator"
	"blog-platform/internal/logger"
	"blog-platform/internal/middleware"
	"blog-platform/internal/policy"
)

// GenerateHandler handles draft content generation.
type GenerateHandler struct {
	generator generator.ContentGenerator
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(gen generator.ContentGenerator) *GenerateHandler {
	return &GenerateHandler{generator: gen}
}

type generateRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
}

// Generate handles POST /api/v1/generate (admin only).
func (h *GenerateHandler) Generate(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if !policy.CanGenerateDrafts(identity) {
		respondError(c, http.StatusForbidden, "forbidden")
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" {
		respondError(c, http.StatusBadRequest, "topic is required")
		return
	}

	draft, err := h.generator.GenerateDraft(c.Request.Context(), generator.DraftRequest{
		Topic:    req.Topic,
		Category: req.Category,
	})
	if err != nil {
		logger.Error("failed to generate draft",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		respondError(c, http.StatusInternalServerError, "failed to generate draft")
		return
	}

	respond(c, http.StatusOK, "draft generated", draft)
}
