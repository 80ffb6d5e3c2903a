package auth

// Role classifies what a caller is allowed to do with bookings.
type Role string

const (
	RoleUser    Role = "User"
	RoleOwner   Role = "Owner"
	RoleAdmin   Role = "Admin"
	RoleSupport Role = "Support"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin, RoleSupport:
		return true
	}
	return false
}

// Context identifies the authenticated caller of an operation. It is passed
// explicitly into every service method instead of being pulled from request
// state.
type Context struct {
	UserID string
	Role   Role
}
