// Package session holds the authenticated principal for the console: who is
// logged in, with which role, and the bearer token attached to backend calls.
// The session is persisted to durable client storage so it survives restarts.
package session

// RoleAdmin is the only role allowed to use the administrative console.
const RoleAdmin = "Admin"

// Storage keys for the persisted session fields. All six must be present for
// a stored session to be reconstructed; anything less is treated as logged out.
const (
	KeyToken  = "jwt"
	KeyName   = "userName"
	KeyEmail  = "email"
	KeyID     = "id"
	KeyRole   = "role"
	KeyUserID = "userId"
)

var sessionKeys = []string{KeyToken, KeyName, KeyEmail, KeyID, KeyRole, KeyUserID}

// Session is the authenticated identity. A Session is either fully populated
// or absent; partial sessions are never exposed.
type Session struct {
	ID     string
	UserID string
	Name   string
	Email  string
	Role   string
	Token  string
}
