package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
	"blog-platform/internal/policy"
)

const articleColumns = `id, title, subtitle, body, category, featured_image_ref,
		published, author_role, author_email, author_name, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, subtitle, body, category, featured_image_ref,
			published, author_role, author_email, author_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, article.ID, article.Title, article.Subtitle, article.Body, article.Category,
		article.FeaturedImageRef, article.Published, article.AuthorRole,
		article.AuthorEmail, article.AuthorName, article.CreatedAt, article.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	return nil
}

// GetByID retrieves an article by ID without any visibility filtering.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM articles WHERE id = $1
	`, articleColumns), id)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	return article, nil
}

// GetScoped retrieves an article by ID constrained by the caller's scope. A
// row filtered out by the scope is reported the same way as a missing row.
func (r *PostgresArticleRepository) GetScoped(ctx context.Context, id string, scope policy.ArticleScope) (*domain.Article, error) {
	args := []interface{}{id}
	conds := []string{"id = $1"}
	if scope.PublishedOnly {
		conds = append(conds, "published = TRUE")
	}
	if scope.AuthorEmail != "" {
		args = append(args, scope.AuthorEmail)
		conds = append(conds, fmt.Sprintf("author_email = $%d", len(args)))
	}

	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM articles WHERE %s
	`, articleColumns, strings.Join(conds, " AND ")), args...)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get scoped article: %w", err)
	}

	return article, nil
}

// List retrieves articles matching the scope, newest first.
func (r *PostgresArticleRepository) List(ctx context.Context, scope policy.ArticleScope) ([]domain.Article, error) {
	var args []interface{}
	var conds []string
	if scope.PublishedOnly {
		conds = append(conds, "published = TRUE")
	}
	if scope.AuthorEmail != "" {
		args = append(args, scope.AuthorEmail)
		conds = append(conds, fmt.Sprintf("author_email = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM articles`, articleColumns)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

// ListRecent retrieves the most recently created articles regardless of
// publish state, for the admin dashboard.
func (r *PostgresArticleRepository) ListRecent(ctx context.Context, limit int) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM articles ORDER BY created_at DESC LIMIT $1
	`, articleColumns), limit)
	if err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

// Update persists the mutable fields of an article. Author fields are
// immutable after creation and are not written here.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, subtitle = $3, body = $4, category = $5,
			featured_image_ref = $6, published = $7, updated_at = $8
		WHERE id = $1
	`, article.ID, article.Title, article.Subtitle, article.Body, article.Category,
		article.FeaturedImageRef, article.Published, article.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	return nil
}

// Delete removes an article permanently. Returns false when no row matched.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByPublished counts articles in the given publish state.
func (r *PostgresArticleRepository) CountByPublished(ctx context.Context, published bool) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM articles WHERE published = $1
	`, published).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Body, &a.Category,
		&a.FeaturedImageRef, &a.Published, &a.AuthorRole, &a.AuthorEmail,
		&a.AuthorName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]domain.Article, error) {
	articles := make([]domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}
	return articles, nil
}
