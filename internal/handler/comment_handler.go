package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID           string  `json:"id"`
	ArticleID    string  `json:"article_id"`
	AuthorName   string  `json:"author_name"`
	Body         string  `json:"body"`
	Approved     bool    `json:"approved"`
	CreatedAt    string  `json:"created_at"`
	ArticleTitle *string `json:"article_title,omitempty"`
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		Approved:   c.Approved,
		CreatedAt:  c.CreatedAt.Format(TimeFormat),
	}
}

type addCommentRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Add handles POST /api/v1/articles/:id/comments - anonymous submission.
func (h *CommentHandler) Add(c *gin.Context) {
	articleID := c.Param("id")

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), articleID, req.Name, req.Content)
	if err != nil {
		respondServiceError(c, err, "add comment")
		return
	}

	respond(c, http.StatusCreated, "comment submitted for moderation", toCommentResponse(comment))
}

// ListApproved handles GET /api/v1/articles/:id/comments
func (h *CommentHandler) ListApproved(c *gin.Context) {
	articleID := c.Param("id")

	comments, err := h.commentService.ListApproved(c.Request.Context(), articleID)
	if err != nil {
		respondServiceError(c, err, "list comments")
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, toCommentResponse(&comments[i]))
	}

	respond(c, http.StatusOK, "comments retrieved", responses)
}

// ListAll handles GET /api/v1/comments - the admin moderation queue.
func (h *CommentHandler) ListAll(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	comments, err := h.commentService.ListAll(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "list all comments")
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response := toCommentResponse(&comments[i].Comment)
		response.ArticleTitle = comments[i].ArticleTitle
		responses = append(responses, response)
	}

	respond(c, http.StatusOK, "comments retrieved", responses)
}

// Approve handles POST /api/v1/comments/:id/approve
func (h *CommentHandler) Approve(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	if err := h.commentService.Approve(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondServiceError(c, err, "approve comment")
		return
	}

	respond(c, http.StatusOK, "comment approved", nil)
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	if err := h.commentService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondServiceError(c, err, "delete comment")
		return
	}

	respond(c, http.StatusOK, "comment deleted", nil)
}
