package domain

import "time"

// Comment represents a comment entity in the system. Comments are submitted
// anonymously and stay unapproved until an admin approves them; rejection is
// modeled as deletion, there is no rejected state.
type Comment struct {
	ID         string    `json:"id"`
	ArticleID  string    `json:"article_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// ModeratedComment is a comment paired with its article's title for the admin
// moderation listing. ArticleTitle is nil when the article has been deleted.
type ModeratedComment struct {
	Comment
	ArticleTitle *string `json:"article_title,omitempty"`
}
