package repository

import (
	"context"
	"errors"

	"blog-platform/internal/domain"
	"blog-platform/internal/policy"
)

// ErrDuplicateEmail is returned when creating a user whose email is already
// registered.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ArticleRepository defines methods for article data access. Lookups that
// take an ArticleScope apply it as part of the query, so a scoped miss and a
// missing row are indistinguishable to the caller.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetScoped(ctx context.Context, id string, scope policy.ArticleScope) (*domain.Article, error)
	List(ctx context.Context, scope policy.ArticleScope) ([]domain.Article, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) (bool, error)
	CountByPublished(ctx context.Context, published bool) (int, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByArticle(ctx context.Context, articleID string, approvedOnly bool) ([]domain.Comment, error)
	ListAll(ctx context.Context) ([]domain.ModeratedComment, error)
	SetApproved(ctx context.Context, id string, approved bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	CountPending(ctx context.Context) (int, error)
}
