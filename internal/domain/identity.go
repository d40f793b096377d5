package domain

// Identity is the verified claim set of the current caller. It is derived from
// the bearer token once per request and discarded afterwards; nothing about it
// is persisted or re-derived from request bodies.
type Identity struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Role        Role   `json:"role"`
	UserID      string `json:"user_id,omitempty"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
