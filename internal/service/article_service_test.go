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
	"blog-platform/internal/policy"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

func adminIdentity() *domain.Identity {
	return &domain.Identity{Email: "admin@example.com", Role: domain.RoleAdmin}
}

func userIdentity() *domain.Identity {
	return &domain.Identity{
		Email:       "author@example.com",
		DisplayName: "Author",
		Role:        domain.RoleUser,
		UserID:      "user-1",
	}
}

func TestArticleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("user submission is forced to draft", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		published := true
		article, message, err := svc.Create(ctx, userIdentity(), service.ArticleInput{
			Title:     "My First Post",
			Body:      "Some body text",
			Category:  "tech",
			Published: &published,
		})

		require.NoError(t, err)
		require.NotNil(t, article)
		assert.False(t, article.Published)
		assert.Equal(t, "article submitted for review", message)
		assert.Equal(t, "author@example.com", article.AuthorEmail)
		assert.Equal(t, "Author", article.AuthorName)
		assert.Equal(t, domain.RoleUser, article.AuthorRole)
		assert.NotEmpty(t, article.ID)
	})

	t.Run("admin publish request is honored", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		published := true
		article, message, err := svc.Create(ctx, adminIdentity(), service.ArticleInput{
			Title:     "Announcement",
			Body:      "Body",
			Category:  "news",
			Published: &published,
		})

		require.NoError(t, err)
		assert.True(t, article.Published)
		assert.Equal(t, "article added", message)
	})

	t.Run("admin without publish flag gets a draft", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		article, _, err := svc.Create(ctx, adminIdentity(), service.ArticleInput{
			Title:    "Draft",
			Body:     "Body",
			Category: "news",
		})

		require.NoError(t, err)
		assert.False(t, article.Published)
	})

	t.Run("author name falls back to email", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		article, _, err := svc.Create(ctx, adminIdentity(), service.ArticleInput{
			Title:    "No Display Name",
			Body:     "Body",
			Category: "news",
		})

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", article.AuthorName)
	})

	t.Run("rejects article with missing fields", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		article, _, err := svc.Create(ctx, userIdentity(), service.ArticleInput{
			Title: "Title only",
		})

		require.Error(t, err)
		assert.Nil(t, article)
	})
}

func TestArticleService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns article regardless of publish state", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		draft := &domain.Article{ID: "a-1", Title: "Draft", Published: false}
		mockRepo.EXPECT().
			GetByID(mock.Anything, "a-1").
			Return(draft, nil)

		article, err := svc.GetByID(ctx, "a-1")

		require.NoError(t, err)
		assert.Equal(t, draft, article)
	})

	t.Run("missing article is ErrNotFound", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return(nil, nil)

		article, err := svc.GetByID(ctx, "missing")

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, article)
	})
}

func TestArticleService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.Article {
		return &domain.Article{
			ID:          "a-1",
			Title:       "Old Title",
			Body:        "Old body",
			Category:    "tech",
			Published:   false,
			AuthorRole:  domain.RoleUser,
			AuthorEmail: "author@example.com",
			AuthorName:  "Author",
		}
	}

	t.Run("merges only provided fields", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := userIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-1", policy.ScopeForArticles(identity)).
			Return(existing(), nil)
		mockRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		newTitle := "New Title"
		article, err := svc.Update(ctx, identity, "a-1", service.ArticleUpdateInput{
			Title: &newTitle,
		})

		require.NoError(t, err)
		assert.Equal(t, "New Title", article.Title)
		assert.Equal(t, "Old body", article.Body)
		assert.Equal(t, "tech", article.Category)
	})

	t.Run("publish change from user is dropped", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := userIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-1", policy.ScopeForArticles(identity)).
			Return(existing(), nil)
		mockRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		published := true
		article, err := svc.Update(ctx, identity, "a-1", service.ArticleUpdateInput{
			Published: &published,
		})

		require.NoError(t, err)
		assert.False(t, article.Published)
	})

	t.Run("publish change from admin is applied", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := adminIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-1", policy.ScopeForArticles(identity)).
			Return(existing(), nil)
		mockRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		published := true
		article, err := svc.Update(ctx, identity, "a-1", service.ArticleUpdateInput{
			Published: &published,
		})

		require.NoError(t, err)
		assert.True(t, article.Published)
	})

	t.Run("someone else's article looks missing", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := userIdentity()
		// The ownership scope filters the row out, so the repository
		// reports no match rather than a row the caller cannot touch.
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-other", policy.ScopeForArticles(identity)).
			Return(nil, nil)

		newTitle := "Hijack"
		article, err := svc.Update(ctx, identity, "a-other", service.ArticleUpdateInput{
			Title: &newTitle,
		})

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, article)
	})
}

func TestArticleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes owned article", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := userIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-1", policy.ScopeForArticles(identity)).
			Return(&domain.Article{ID: "a-1", AuthorEmail: identity.Email}, nil)
		mockRepo.EXPECT().
			Delete(mock.Anything, "a-1").
			Return(true, nil)

		err := svc.Delete(ctx, identity, "a-1")

		require.NoError(t, err)
	})

	t.Run("missing article is ErrNotFound", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := adminIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "missing", policy.ScopeForArticles(identity)).
			Return(nil, nil)

		err := svc.Delete(ctx, identity, "missing")

		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("row vanishing between read and write is ErrNotFound", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := adminIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-1", policy.ScopeForArticles(identity)).
			Return(&domain.Article{ID: "a-1"}, nil)
		mockRepo.EXPECT().
			Delete(mock.Anything, "a-1").
			Return(false, nil)

		err := svc.Delete(ctx, identity, "a-1")

		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestArticleService_TogglePublish(t *testing.T) {
	ctx := context.Background()

	t.Run("admin publishes a draft", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := adminIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-1", policy.ScopeForArticles(identity)).
			Return(&domain.Article{ID: "a-1", Published: false}, nil)
		mockRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		article, message, err := svc.TogglePublish(ctx, identity, "a-1")

		require.NoError(t, err)
		assert.True(t, article.Published)
		assert.Equal(t, "article published", message)
	})

	t.Run("admin unpublishes a published article", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := adminIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-1", policy.ScopeForArticles(identity)).
			Return(&domain.Article{ID: "a-1", Published: true}, nil)
		mockRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		article, message, err := svc.TogglePublish(ctx, identity, "a-1")

		require.NoError(t, err)
		assert.False(t, article.Published)
		assert.Equal(t, "article unpublished", message)
	})

	t.Run("user toggling own article is forbidden and nothing is written", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := userIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-1", policy.ScopeForArticles(identity)).
			Return(&domain.Article{ID: "a-1", AuthorEmail: identity.Email}, nil)

		article, _, err := svc.TogglePublish(ctx, identity, "a-1")

		assert.ErrorIs(t, err, service.ErrForbidden)
		assert.Nil(t, article)
	})

	t.Run("user toggling someone else's article looks missing", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := userIdentity()
		mockRepo.EXPECT().
			GetScoped(mock.Anything, "a-other", policy.ScopeForArticles(identity)).
			Return(nil, nil)

		_, _, err := svc.TogglePublish(ctx, identity, "a-other")

		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestArticleService_Listing(t *testing.T) {
	ctx := context.Background()

	t.Run("public listing uses the anonymous scope", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		articles := []domain.Article{{ID: "a-1", Published: true}}
		mockRepo.EXPECT().
			List(mock.Anything, policy.ArticleScope{PublishedOnly: true}).
			Return(articles, nil)

		got, err := svc.ListPublic(ctx)

		require.NoError(t, err)
		assert.Equal(t, articles, got)
	})

	t.Run("caller listing uses the ownership scope", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		identity := userIdentity()
		mockRepo.EXPECT().
			List(mock.Anything, policy.ArticleScope{AuthorEmail: identity.Email}).
			Return([]domain.Article{}, nil)

		_, err := svc.ListForCaller(ctx, identity)

		require.NoError(t, err)
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(mockRepo, validator.NewValidator())

		mockRepo.EXPECT().
			List(mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := svc.ListPublic(ctx)

		assert.Error(t, err)
	})
}
