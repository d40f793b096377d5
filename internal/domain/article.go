package domain

import "time"

// Article represents an article entity in the system. Author fields are
// captured from the creating identity and never change afterwards.
type Article struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Subtitle         *string   `json:"subtitle,omitempty"`
	Body             string    `json:"body"`
	Category         string    `json:"category"`
	FeaturedImageRef *string   `json:"featured_image_ref,omitempty"`
	Published        bool      `json:"published"`
	AuthorRole       Role      `json:"author_role"`
	AuthorEmail      string    `json:"author_email"`
	AuthorName       string    `json:"author_name"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
