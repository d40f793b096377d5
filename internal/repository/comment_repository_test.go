package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/repository"
)

func newTestComment(articleID string, approved bool, createdAt time.Time) *domain.Comment {
	return &domain.Comment{
		ID:         uuid.New().String(),
		ArticleID:  articleID,
		AuthorName: "Visitor",
		Body:       "Nice article!",
		Approved:   approved,
		CreatedAt:  createdAt,
	}
}

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresCommentRepository(testDB.Pool)
	articleRepo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get by id", func(t *testing.T) {
		testDB.TruncateTables(t, "comments")

		comment := newTestComment(uuid.New().String(), false, time.Now().UTC())
		require.NoError(t, repo.Create(ctx, comment))

		got, err := repo.GetByID(ctx, comment.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, comment.AuthorName, got.AuthorName)
		assert.False(t, got.Approved)
	})

	t.Run("missing comment returns nil without error", func(t *testing.T) {
		got, err := repo.GetByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list by article filters approval and orders newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "comments")

		articleID := uuid.New().String()
		base := time.Now().UTC().Add(-time.Hour)
		older := newTestComment(articleID, true, base)
		newer := newTestComment(articleID, true, base.Add(10*time.Minute))
		pending := newTestComment(articleID, false, base.Add(20*time.Minute))
		elsewhere := newTestComment(uuid.New().String(), true, base)
		for _, c := range []*domain.Comment{older, newer, pending, elsewhere} {
			require.NoError(t, repo.Create(ctx, c))
		}

		approved, err := repo.ListByArticle(ctx, articleID, true)
		require.NoError(t, err)
		require.Len(t, approved, 2)
		assert.Equal(t, newer.ID, approved[0].ID)
		assert.Equal(t, older.ID, approved[1].ID)

		all, err := repo.ListByArticle(ctx, articleID, false)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("list all attaches article titles and keeps orphans", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "articles")

		article := newTestArticle("a@example.com", true, time.Now().UTC())
		require.NoError(t, articleRepo.Create(ctx, article))

		attached := newTestComment(article.ID, false, time.Now().UTC())
		orphan := newTestComment(uuid.New().String(), false, time.Now().UTC().Add(-time.Minute))
		require.NoError(t, repo.Create(ctx, attached))
		require.NoError(t, repo.Create(ctx, orphan))

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		assert.Equal(t, attached.ID, all[0].ID)
		require.NotNil(t, all[0].ArticleTitle)
		assert.Equal(t, article.Title, *all[0].ArticleTitle)

		// A comment whose article is gone survives with no title.
		assert.Equal(t, orphan.ID, all[1].ID)
		assert.Nil(t, all[1].ArticleTitle)
	})

	t.Run("set approved reports whether a row matched", func(t *testing.T) {
		testDB.TruncateTables(t, "comments")

		comment := newTestComment(uuid.New().String(), false, time.Now().UTC())
		require.NoError(t, repo.Create(ctx, comment))

		matched, err := repo.SetApproved(ctx, comment.ID, true)
		require.NoError(t, err)
		assert.True(t, matched)

		got, err := repo.GetByID(ctx, comment.ID)
		require.NoError(t, err)
		assert.True(t, got.Approved)

		matched, err = repo.SetApproved(ctx, uuid.New().String(), true)
		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("delete reports whether a row matched", func(t *testing.T) {
		testDB.TruncateTables(t, "comments")

		comment := newTestComment(uuid.New().String(), false, time.Now().UTC())
		require.NoError(t, repo.Create(ctx, comment))

		deleted, err := repo.Delete(ctx, comment.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, comment.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("count totals and pending", func(t *testing.T) {
		testDB.TruncateTables(t, "comments")

		articleID := uuid.New().String()
		now := time.Now().UTC()
		require.NoError(t, repo.Create(ctx, newTestComment(articleID, true, now)))
		require.NoError(t, repo.Create(ctx, newTestComment(articleID, false, now)))
		require.NoError(t, repo.Create(ctx, newTestComment(articleID, false, now)))

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, total)

		pending, err := repo.CountPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, pending)
	})
}
