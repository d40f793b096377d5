// Package policy holds the access-control decisions for articles and
// comments as pure functions. Callers pass the verified identity explicitly
// (nil means an anonymous caller); no function here touches the database or
// the request, so every rule is testable in isolation.
package policy

import "blog-platform/internal/domain"

// ArticleScope is the query predicate a repository must apply when reading
// articles on behalf of a caller. The zero value means no restriction.
type ArticleScope struct {
	// PublishedOnly restricts results to published articles.
	PublishedOnly bool
	// AuthorEmail, when non-empty, restricts results to articles created by
	// that author.
	AuthorEmail string
}

// ScopeForArticles returns the visibility predicate for the given caller:
// anonymous callers see published articles only, admins see everything, and
// users see exactly their own articles in any publish state.
//
// The same scope doubles as the ownership filter for mutations, so a lookup
// that misses is indistinguishable from a lookup the caller was not allowed
// to make. That masking is deliberate: it avoids leaking whether an article
// id exists to callers who do not own it.
func ScopeForArticles(identity *domain.Identity) ArticleScope {
	switch {
	case identity == nil:
		return ArticleScope{PublishedOnly: true}
	case identity.Role == domain.RoleAdmin:
		return ArticleScope{}
	default:
		return ArticleScope{AuthorEmail: identity.Email}
	}
}

// CanCreateArticle reports whether the caller may submit a new article. Any
// authenticated identity may; whether it goes live is decided by
// ResolvePublish.
func CanCreateArticle(identity *domain.Identity) bool {
	return identity != nil
}

// ResolvePublish decides the publish state of a newly created article. Only
// an admin who explicitly asked for publication gets a published article;
// everything else starts as a draft, whatever the request said.
func ResolvePublish(identity *domain.Identity, requested *bool) bool {
	return identity.IsAdmin() && requested != nil && *requested
}

// ApplyPublishChange filters a requested publish-state change on update. A
// non-admin's flag is dropped silently rather than rejected.
func ApplyPublishChange(identity *domain.Identity, requested *bool) *bool {
	if !identity.IsAdmin() {
		return nil
	}
	return requested
}

// CanMutateArticle reports whether the caller may update or delete the
// article: admins always, users only on their own.
func CanMutateArticle(identity *domain.Identity, article *domain.Article) bool {
	if identity == nil {
		return false
	}
	if identity.Role == domain.RoleAdmin {
		return true
	}
	return article.AuthorEmail == identity.Email
}

// CanTogglePublish reports whether the caller may flip an article's publish
// state. Denied for users even on articles they own.
func CanTogglePublish(identity *domain.Identity) bool {
	return identity.IsAdmin()
}

// CanModerateComments reports whether the caller may approve or delete
// comments, or list unapproved ones.
func CanModerateComments(identity *domain.Identity) bool {
	return identity.IsAdmin()
}

// ApprovedCommentsOnly reports whether comment listings for the caller must
// be restricted to approved comments.
func ApprovedCommentsOnly(identity *domain.Identity) bool {
	return !identity.IsAdmin()
}

// CanViewDashboard reports whether the caller may read the admin dashboard
// aggregates.
func CanViewDashboard(identity *domain.Identity) bool {
	return identity.IsAdmin()
}

// CanGenerateDrafts reports whether the caller may use the draft content
// generator.
func CanGenerateDrafts(identity *domain.Identity) bool {
	return identity.IsAdmin()
}
