package domain

// Role is the closed set of caller roles. There is no hierarchy: an admin is
// not a user with extra grants, the two are checked independently.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValidRole checks if a role is one of the known roles.
func IsValidRole(role Role) bool {
	return role == RoleAdmin || role == RoleUser
}
