package service

import (
	"context"

	"blog-platform/internal/domain"
)

// ArticleInput carries the caller-supplied fields for article creation.
// Published is a request, not a decision: policy decides what is stored.
type ArticleInput struct {
	Title            string
	Subtitle         *string
	Body             string
	Category         string
	FeaturedImageRef *string
	Published        *bool
}

// ArticleUpdateInput carries a partial update; nil fields are left unchanged.
type ArticleUpdateInput struct {
	Title            *string
	Subtitle         *string
	Body             *string
	Category         *string
	FeaturedImageRef *string
	Published        *bool
}

// LoginResult is the outcome of a successful login. ExpiresIn is in seconds;
// zero for admin tokens, which carry no expiry.
type LoginResult struct {
	Token     string
	User      *domain.User
	ExpiresIn int64
}

// DashboardSummary is the admin dashboard aggregate.
type DashboardSummary struct {
	PublishedCount      int              `json:"published_count"`
	DraftCount          int              `json:"draft_count"`
	CommentCount        int              `json:"comment_count"`
	PendingCommentCount int              `json:"pending_comment_count"`
	RecentArticles      []domain.Article `json:"recent_articles"`
}

// ArticleServiceInterface defines the article lifecycle operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// ListPublic returns published articles, newest first.
	ListPublic(ctx context.Context) ([]domain.Article, error)
	// ListForCaller returns articles visible to the identity, newest first.
	ListForCaller(ctx context.Context, identity *domain.Identity) ([]domain.Article, error)
	// Create validates and persists a new article; the returned string is a
	// role-appropriate status message.
	Create(ctx context.Context, identity *domain.Identity, input ArticleInput) (*domain.Article, string, error)
	// GetByID fetches a single article with no visibility filtering.
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	// Update merges the provided fields into an article the caller owns.
	Update(ctx context.Context, identity *domain.Identity, id string, input ArticleUpdateInput) (*domain.Article, error)
	// Delete permanently removes an article the caller owns.
	Delete(ctx context.Context, identity *domain.Identity, id string) error
	// TogglePublish flips an article's publish state (admin only).
	TogglePublish(ctx context.Context, identity *domain.Identity, id string) (*domain.Article, string, error)
}

// CommentServiceInterface defines the comment moderation operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	// Add records an anonymous comment, always unapproved.
	Add(ctx context.Context, articleID, authorName, body string) (*domain.Comment, error)
	// ListApproved returns approved comments for an article, newest first.
	ListApproved(ctx context.Context, articleID string) ([]domain.Comment, error)
	// ListAll returns every comment with article titles attached (admin only).
	ListAll(ctx context.Context, identity *domain.Identity) ([]domain.ModeratedComment, error)
	// Approve marks a comment approved (admin only, idempotent).
	Approve(ctx context.Context, identity *domain.Identity, id string) error
	// Delete permanently removes a comment (admin only, idempotent).
	Delete(ctx context.Context, identity *domain.Identity, id string) error
}

// AuthServiceInterface defines login and registration.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// AdminLogin checks credentials against the configured admin account and
	// issues a non-expiring admin token.
	AdminLogin(ctx context.Context, email, password string) (*LoginResult, error)
	// Register creates a user-role account.
	Register(ctx context.Context, email, displayName, password string) (*domain.User, error)
	// Login verifies a user account and issues an expiring token; rememberMe
	// selects the long lifetime.
	Login(ctx context.Context, email, password string, rememberMe bool) (*LoginResult, error)
}

// DashboardServiceInterface defines the admin dashboard aggregate.
// Used for dependency injection and mocking in tests.
type DashboardServiceInterface interface {
	Summary(ctx context.Context, identity *domain.Identity) (*DashboardSummary, error)
}
