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

func newTestUser(email string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=2$c2FsdHNhbHQ$aGFzaGhhc2g",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and fetch by email", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user := newTestUser("create@example.com")
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.GetByEmail(ctx, "create@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.DisplayName, got.DisplayName)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
		assert.Equal(t, domain.RoleUser, got.Role)
	})

	t.Run("duplicate email is ErrDuplicateEmail", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		require.NoError(t, repo.Create(ctx, newTestUser("dup@example.com")))

		err := repo.Create(ctx, newTestUser("dup@example.com"))
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})

	t.Run("unknown email returns nil without error", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
