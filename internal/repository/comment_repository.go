package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts a new comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, article_id, author_name, body, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, comment.ID, comment.ArticleID, comment.AuthorName, comment.Body,
		comment.Approved, comment.CreatedAt)

	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by ID.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, article_id, author_name, body, approved, created_at
		FROM comments
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Body, &c.Approved, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &c, nil
}

// ListByArticle retrieves comments for an article, newest first, optionally
// restricted to approved comments.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string, approvedOnly bool) ([]domain.Comment, error) {
	query := `
		SELECT id, article_id, author_name, body, approved, created_at
		FROM comments
		WHERE article_id = $1
	`
	if approvedOnly {
		query += " AND approved = TRUE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Body, &c.Approved, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	return comments, nil
}

// ListAll retrieves every comment across all articles, newest first, with the
// owning article's title attached. Comments whose article was deleted are
// still returned, with a nil title.
func (r *PostgresCommentRepository) ListAll(ctx context.Context) ([]domain.ModeratedComment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.article_id, c.author_name, c.body, c.approved, c.created_at, a.title
		FROM comments c
		LEFT JOIN articles a ON a.id = c.article_id
		ORDER BY c.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list all comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.ModeratedComment, 0)
	for rows.Next() {
		var c domain.ModeratedComment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Body, &c.Approved, &c.CreatedAt, &c.ArticleTitle); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	return comments, nil
}

// SetApproved updates a comment's approval state. Returns false when no row
// matched.
func (r *PostgresCommentRepository) SetApproved(ctx context.Context, id string, approved bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comments SET approved = $2 WHERE id = $1
	`, id, approved)
	if err != nil {
		return false, fmt.Errorf("approve comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a comment permanently. Returns false when no row matched.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Count counts all comments.
func (r *PostgresCommentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

// CountPending counts comments awaiting moderation.
func (r *PostgresCommentRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM comments WHERE approved = FALSE
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending comments: %w", err)
	}
	return count, nil
}
