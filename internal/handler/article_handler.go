package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Subtitle         *string `json:"subtitle,omitempty"`
	Body             string  `json:"body"`
	Category         string  `json:"category"`
	FeaturedImageRef *string `json:"featured_image_ref,omitempty"`
	Published        bool    `json:"published"`
	AuthorRole       string  `json:"author_role"`
	AuthorEmail      string  `json:"author_email"`
	AuthorName       string  `json:"author_name"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:               a.ID,
		Title:            a.Title,
		Subtitle:         a.Subtitle,
		Body:             a.Body,
		Category:         a.Category,
		FeaturedImageRef: a.FeaturedImageRef,
		Published:        a.Published,
		AuthorRole:       string(a.AuthorRole),
		AuthorEmail:      a.AuthorEmail,
		AuthorName:       a.AuthorName,
		CreatedAt:        a.CreatedAt.Format(TimeFormat),
		UpdatedAt:        a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	responses := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, toArticleResponse(&articles[i]))
	}
	return responses
}

type createArticleRequest struct {
	Title            string  `json:"title"`
	Subtitle         *string `json:"subtitle"`
	Body             string  `json:"body"`
	Category         string  `json:"category"`
	FeaturedImageRef *string `json:"featured_image_ref"`
	IsPublished      *bool   `json:"is_published"`
}

type updateArticleRequest struct {
	Title            *string `json:"title"`
	Subtitle         *string `json:"subtitle"`
	Body             *string `json:"body"`
	Category         *string `json:"category"`
	FeaturedImageRef *string `json:"featured_image_ref"`
	IsPublished      *bool   `json:"is_published"`
}

// List handles GET /api/v1/articles - published articles only.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.ListPublic(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list articles")
		return
	}

	respond(c, http.StatusOK, "articles retrieved", toArticleResponses(articles))
}

// ListMine handles GET /api/v1/articles/mine - articles visible to the caller.
func (h *ArticleHandler) ListMine(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	articles, err := h.articleService.ListForCaller(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "list caller articles")
		return
	}

	respond(c, http.StatusOK, "articles retrieved", toArticleResponses(articles))
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get article")
		return
	}

	respond(c, http.StatusOK, "article retrieved", toArticleResponse(article))
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := middleware.GetIdentity(c)

	article, message, err := h.articleService.Create(c.Request.Context(), identity, service.ArticleInput{
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		Body:             req.Body,
		Category:         req.Category,
		FeaturedImageRef: req.FeaturedImageRef,
		Published:        req.IsPublished,
	})
	if err != nil {
		respondServiceError(c, err, "create article")
		return
	}

	respond(c, http.StatusCreated, message, toArticleResponse(article))
}

// Update handles PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := middleware.GetIdentity(c)

	article, err := h.articleService.Update(c.Request.Context(), identity, id, service.ArticleUpdateInput{
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		Body:             req.Body,
		Category:         req.Category,
		FeaturedImageRef: req.FeaturedImageRef,
		Published:        req.IsPublished,
	})
	if err != nil {
		respondServiceError(c, err, "update article")
		return
	}

	respond(c, http.StatusOK, "article updated", toArticleResponse(article))
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	identity := middleware.GetIdentity(c)

	if err := h.articleService.Delete(c.Request.Context(), identity, id); err != nil {
		respondServiceError(c, err, "delete article")
		return
	}

	respond(c, http.StatusOK, "article deleted", nil)
}

// TogglePublish handles POST /api/v1/articles/:id/publish
func (h *ArticleHandler) TogglePublish(c *gin.Context) {
	id := c.Param("id")
	identity := middleware.GetIdentity(c)

	article, message, err := h.articleService.TogglePublish(c.Request.Context(), identity, id)
	if err != nil {
		respondServiceError(c, err, "toggle publish")
		return
	}

	respond(c, http.StatusOK, message, toArticleResponse(article))
}
