package domain

// Role is the coarse capability tier gating task mutation rights.
// The wire flags are inherited from the original user schema:
// "0" is an administrator, "1" a regular member.
type Role string

const (
	RoleAdmin  Role = "0"
	RoleMember Role = "1"
)

// ParseRole validates a wire flag at the boundary so every later comparison
// is a plain value comparison between the two variants.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", ErrInvalidRole(s)
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }
