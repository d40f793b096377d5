package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

func TestCommentService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("submission is always unapproved", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(nil)

		comment, err := svc.Add(ctx, "a-1", "Visitor", "Nice article!")

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.False(t, comment.Approved)
		assert.Equal(t, "a-1", comment.ArticleID)
		assert.Equal(t, "Visitor", comment.AuthorName)
		assert.NotEmpty(t, comment.ID)
	})

	t.Run("rejects comment without a name", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		comment, err := svc.Add(ctx, "a-1", "", "Body")

		require.Error(t, err)
		assert.Nil(t, comment)
	})

	t.Run("rejects comment over the word limit", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		body := strings.Repeat("word ", 501)
		comment, err := svc.Add(ctx, "a-1", "Visitor", body)

		require.Error(t, err)
		assert.Nil(t, comment)
	})
}

func TestCommentService_ListApproved(t *testing.T) {
	ctx := context.Background()

	mockRepo := mocks.NewMockCommentRepository(t)
	svc := service.NewCommentService(mockRepo, validator.NewValidator())

	approved := []domain.Comment{{ID: "c-1", ArticleID: "a-1", Approved: true}}
	mockRepo.EXPECT().
		ListByArticle(mock.Anything, "a-1", true).
		Return(approved, nil)

	got, err := svc.ListApproved(ctx, "a-1")

	require.NoError(t, err)
	assert.Equal(t, approved, got)
}

func TestCommentService_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees every comment with article titles", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		title := "Some Article"
		all := []domain.ModeratedComment{
			{Comment: domain.Comment{ID: "c-1", Approved: false}, ArticleTitle: &title},
			{Comment: domain.Comment{ID: "c-2", Approved: true}, ArticleTitle: nil},
		}
		mockRepo.EXPECT().
			ListAll(mock.Anything).
			Return(all, nil)

		got, err := svc.ListAll(ctx, adminIdentity())

		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		got, err := svc.ListAll(ctx, userIdentity())

		assert.ErrorIs(t, err, service.ErrForbidden)
		assert.Nil(t, got)
	})
}

func TestCommentService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a pending comment", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			GetByID(mock.Anything, "c-1").
			Return(&domain.Comment{ID: "c-1", Approved: false}, nil)
		mockRepo.EXPECT().
			SetApproved(mock.Anything, "c-1", true).
			Return(true, nil)

		err := svc.Approve(ctx, adminIdentity(), "c-1")

		require.NoError(t, err)
	})

	t.Run("approving an approved comment is a no-op", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			GetByID(mock.Anything, "c-1").
			Return(&domain.Comment{ID: "c-1", Approved: true}, nil)

		err := svc.Approve(ctx, adminIdentity(), "c-1")

		require.NoError(t, err)
	})

	t.Run("missing comment is ErrNotFound", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return(nil, nil)

		err := svc.Approve(ctx, adminIdentity(), "missing")

		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		err := svc.Approve(ctx, userIdentity(), "c-1")

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing comment", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			Delete(mock.Anything, "c-1").
			Return(true, nil)

		err := svc.Delete(ctx, adminIdentity(), "c-1")

		require.NoError(t, err)
	})

	t.Run("deleting a missing comment still succeeds", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			Delete(mock.Anything, "gone").
			Return(false, nil)

		err := svc.Delete(ctx, adminIdentity(), "gone")

		require.NoError(t, err)
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			Delete(mock.Anything, "c-1").
			Return(false, errors.New("connection refused"))

		err := svc.Delete(ctx, adminIdentity(), "c-1")

		assert.Error(t, err)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		mockRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(mockRepo, validator.NewValidator())

		err := svc.Delete(ctx, userIdentity(), "c-1")

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}
