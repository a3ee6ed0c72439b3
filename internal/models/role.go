// Package models contains data models for the auth service.
package models

// Role names form a closed catalog. The rows are seeded at startup and are
// read-only afterwards.
const (
	RoleUser      = "ROLE_USER"
	RoleModerator = "ROLE_MODERATOR"
	RoleAdmin     = "ROLE_ADMIN"
)

// AllRoleNames returns every valid role name, in seeding order.
func AllRoleNames() []string {
	return []string{RoleUser, RoleModerator, RoleAdmin}
}

// MapRoleName resolves a requested role string to a catalog role name.
// Unrecognized values fall back to the base role instead of failing, so a
// signup request never errors on the roles it asks for.
func MapRoleName(requested string) string {
	switch requested {
	case "admin":
		return RoleAdmin
	case "mod":
		return RoleModerator
	default:
		return RoleUser
	}
}

// Role represents a permission group assigned to users.
type Role struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:20"`
}

// TableName returns the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}
