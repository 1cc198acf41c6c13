package models

const (
	RoleAdmin = 1
	RoleUser  = 2
)

// User is keyed by email. ID is a generated surrogate referenced by alerts.
type User struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"roleId"`
}

// RoleName maps a role id to the name carried in access tokens.
func RoleName(roleID int) string {
	switch roleID {
	case RoleAdmin:
		return "admin"
	default:
		return "user"
	}
}
