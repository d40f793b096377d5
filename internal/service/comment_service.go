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

// CommentService orchestrates comment submission and moderation. Submission
// is anonymous; everything else is gated on the moderation policy.
type CommentService struct {
	comments  repository.CommentRepository
	validator *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository, v *validator.Validator) *CommentService {
	return &CommentService{
		comments:  comments,
		validator: v,
	}
}

// Add records a comment submission. No identity is required and the approved
// flag is forced false regardless of input.
func (s *CommentService) Add(ctx context.Context, articleID, authorName, body string) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:         uuid.New().String(),
		ArticleID:  articleID,
		AuthorName: authorName,
		Body:       body,
		Approved:   false,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.validator.ValidateComment(comment); err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.ObserveCommentOperation("submit")

	return comment, nil
}

// ListApproved returns the approved comments for an article, newest first.
func (s *CommentService) ListApproved(ctx context.Context, articleID string) ([]domain.Comment, error) {
	return s.comments.ListByArticle(ctx, articleID, true)
}

// ListAll returns every comment across all articles with the owning article's
// title attached, newest first. Admin only.
func (s *CommentService) ListAll(ctx context.Context, identity *domain.Identity) ([]domain.ModeratedComment, error) {
	if !policy.CanModerateComments(identity) {
		return nil, ErrForbidden
	}
	return s.comments.ListAll(ctx)
}

// Approve marks a comment approved. Approving an already-approved comment is
// a no-op success; a missing comment is ErrNotFound.
func (s *CommentService) Approve(ctx context.Context, identity *domain.Identity, id string) error {
	if !policy.CanModerateComments(identity) {
		return ErrForbidden
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("resolve comment: %w", err)
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.Approved {
		return nil
	}

	if _, err := s.comments.SetApproved(ctx, id, true); err != nil {
		return fmt.Errorf("approve comment: %w", err)
	}

	metrics.ObserveCommentOperation("approve")

	return nil
}

// Delete removes a comment permanently. Deleting a comment that no longer
// exists is a success: the moderation flow treats delete as "make it gone".
func (s *CommentService) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	if !policy.CanModerateComments(identity) {
		return ErrForbidden
	}

	if _, err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	metrics.ObserveCommentOperation("delete")

	return nil
}
