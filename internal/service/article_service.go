package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-platform/internal/domain"
	"blog-platform/internal/metrics"
	"blog-platform/internal/policy"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

// ArticleService orchestrates the article lifecycle: creation, update,
// deletion and the draft/published transitions, with every decision delegated
// to the policy package.
type ArticleService struct {
	articles  repository.ArticleRepository
	validator *validator.Validator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles repository.ArticleRepository, v *validator.Validator) *ArticleService {
	return &ArticleService{
		articles:  articles,
		validator: v,
	}
}

// ListPublic returns published articles, newest first.
func (s *ArticleService) ListPublic(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx, policy.ScopeForArticles(nil))
}

// ListForCaller returns the articles the identity may see, newest first:
// everything for admins, the caller's own articles for users.
func (s *ArticleService) ListForCaller(ctx context.Context, identity *domain.Identity) ([]domain.Article, error) {
	return s.articles.List(ctx, policy.ScopeForArticles(identity))
}

// Create validates and persists a new article. Author fields come from the
// identity, never from the input, and the publish flag is only honored for
// admins who explicitly requested publication.
func (s *ArticleService) Create(ctx context.Context, identity *domain.Identity, input ArticleInput) (*domain.Article, string, error) {
	now := time.Now().UTC()
	article := &domain.Article{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Subtitle:         input.Subtitle,
		Body:             input.Body,
		Category:         input.Category,
		FeaturedImageRef: input.FeaturedImageRef,
		Published:        policy.ResolvePublish(identity, input.Published),
		AuthorRole:       identity.Role,
		AuthorEmail:      identity.Email,
		AuthorName:       identity.DisplayName,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if article.AuthorName == "" {
		article.AuthorName = identity.Email
	}

	if err := s.validator.ValidateArticle(article); err != nil {
		return nil, "", err
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, "", fmt.Errorf("create article: %w", err)
	}

	metrics.ObserveArticleOperation("create", string(identity.Role))

	message := "article submitted for review"
	if identity.IsAdmin() {
		message = "article added"
	}
	return article, message, nil
}

// GetByID fetches a single article. No visibility filter is applied here: an
// unpublished article is returned to anyone holding its id.
func (s *ArticleService) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// Update merges the provided fields into the target article. The target is
// resolved through the caller's ownership scope, so updating someone else's
// article reports ErrNotFound rather than ErrForbidden. A publish-state
// change from a non-admin is dropped silently.
func (s *ArticleService) Update(ctx context.Context, identity *domain.Identity, id string, input ArticleUpdateInput) (*domain.Article, error) {
	article, err := s.articles.GetScoped(ctx, id, policy.ScopeForArticles(identity))
	if err != nil {
		return nil, fmt.Errorf("resolve article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Subtitle != nil {
		article.Subtitle = input.Subtitle
	}
	if input.Body != nil {
		article.Body = *input.Body
	}
	if input.Category != nil {
		article.Category = *input.Category
	}
	if input.FeaturedImageRef != nil {
		article.FeaturedImageRef = input.FeaturedImageRef
	}
	if published := policy.ApplyPublishChange(identity, input.Published); published != nil {
		article.Published = *published
	}
	article.UpdatedAt = time.Now().UTC()

	if err := s.validator.ValidateArticle(article); err != nil {
		return nil, err
	}

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	metrics.ObserveArticleOperation("update", string(identity.Role))

	return article, nil
}

// Delete removes an article permanently, resolved through the caller's
// ownership scope like Update.
func (s *ArticleService) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	article, err := s.articles.GetScoped(ctx, id, policy.ScopeForArticles(identity))
	if err != nil {
		return fmt.Errorf("resolve article: %w", err)
	}
	if article == nil {
		return ErrNotFound
	}

	deleted, err := s.articles.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !deleted {
		// Removed between the resolving read and the write.
		return ErrNotFound
	}

	metrics.ObserveArticleOperation("delete", string(identity.Role))

	return nil
}

// TogglePublish flips an article's publish state. Resolution goes through
// the ownership scope first, then the role check, so a user toggling their
// own article gets ErrForbidden while toggling someone else's gets
// ErrNotFound.
//
// The flip is a read-then-write without a version check; two concurrent
// toggles can land on a state neither caller observed. Accepted as a known
// limitation of the single-admin deployment.
func (s *ArticleService) TogglePublish(ctx context.Context, identity *domain.Identity, id string) (*domain.Article, string, error) {
	article, err := s.articles.GetScoped(ctx, id, policy.ScopeForArticles(identity))
	if err != nil {
		return nil, "", fmt.Errorf("resolve article: %w", err)
	}
	if article == nil {
		return nil, "", ErrNotFound
	}

	if !policy.CanTogglePublish(identity) {
		return nil, "", ErrForbidden
	}

	article.Published = !article.Published
	article.UpdatedAt = time.Now().UTC()

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, "", fmt.Errorf("toggle publish: %w", err)
	}

	metrics.ObserveArticleOperation("publish_toggle", string(identity.Role))

	message := "article unpublished"
	if article.Published {
		message = "article published"
	}
	return article, message, nil
}
