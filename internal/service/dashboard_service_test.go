package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
	"blog-platform/internal/service"
)

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates counts and recent articles", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(t)
		mockComments := mocks.NewMockCommentRepository(t)
		svc := service.NewDashboardService(mockArticles, mockComments)

		recent := []domain.Article{{ID: "a-2"}, {ID: "a-1"}}
		mockArticles.EXPECT().CountByPublished(mock.Anything, true).Return(7, nil)
		mockArticles.EXPECT().CountByPublished(mock.Anything, false).Return(3, nil)
		mockComments.EXPECT().Count(mock.Anything).Return(12, nil)
		mockComments.EXPECT().CountPending(mock.Anything).Return(4, nil)
		mockArticles.EXPECT().ListRecent(mock.Anything, 5).Return(recent, nil)

		summary, err := svc.Summary(ctx, adminIdentity())

		require.NoError(t, err)
		assert.Equal(t, 7, summary.PublishedCount)
		assert.Equal(t, 3, summary.DraftCount)
		assert.Equal(t, 12, summary.CommentCount)
		assert.Equal(t, 4, summary.PendingCommentCount)
		assert.Equal(t, recent, summary.RecentArticles)
	})

	t.Run("non-admin is forbidden before any query runs", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(t)
		mockComments := mocks.NewMockCommentRepository(t)
		svc := service.NewDashboardService(mockArticles, mockComments)

		summary, err := svc.Summary(ctx, userIdentity())

		assert.ErrorIs(t, err, service.ErrForbidden)
		assert.Nil(t, summary)
	})

	t.Run("count failure is surfaced", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(t)
		mockComments := mocks.NewMockCommentRepository(t)
		svc := service.NewDashboardService(mockArticles, mockComments)

		mockArticles.EXPECT().
			CountByPublished(mock.Anything, true).
			Return(0, errors.New("connection refused"))

		summary, err := svc.Summary(ctx, adminIdentity())

		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}
