package service

import (
	"context"
	"fmt"

	"blog-platform/internal/domain"
	"blog-platform/internal/policy"
	"blog-platform/internal/repository"
)

const recentArticlesLimit = 5

// DashboardService computes the admin dashboard aggregate.
type DashboardService struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(articles repository.ArticleRepository, comments repository.CommentRepository) *DashboardService {
	return &DashboardService{
		articles: articles,
		comments: comments,
	}
}

// Summary returns publish/draft counts, comment counts and the most recent
// articles. Admin only.
func (s *DashboardService) Summary(ctx context.Context, identity *domain.Identity) (*DashboardSummary, error) {
	if !policy.CanViewDashboard(identity) {
		return nil, ErrForbidden
	}

	published, err := s.articles.CountByPublished(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("count published: %w", err)
	}
	drafts, err := s.articles.CountByPublished(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("count drafts: %w", err)
	}
	comments, err := s.comments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	pending, err := s.comments.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending comments: %w", err)
	}
	recent, err := s.articles.ListRecent(ctx, recentArticlesLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}

	return &DashboardSummary{
		PublishedCount:      published,
		DraftCount:          drafts,
		CommentCount:        comments,
		PendingCommentCount: pending,
		RecentArticles:      recent,
	}, nil
}
