// Package policy holds the role-scoped visibility rules and the post
// moderation decision. Every function here is pure: callers pass in the
// requester, the ownership fields and a settings snapshot, and apply the
// returned decision themselves. The package never touches the database.
package policy

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleTherapist Role = "THERAPIST"
	RoleParent    Role = "PARENT"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTherapist, RoleParent:
		return true
	}
	return false
}

// Requester identifies the authenticated caller of a decision. Identity is
// established upstream by the auth middleware and trusted here.
type Requester struct {
	ID   uint64
	Role Role
}
