package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) String() string {
	return string(r)
}

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleMember:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// The role set is closed and small, so slugs are resolved against a fixed
// table instead of a live lookup join.
var roleIDs = map[Role]int16{
	RoleAdmin:  1,
	RoleMember: 2,
}

func (r Role) ID() int16 {
	return roleIDs[r]
}

func RoleFromID(id int16) (Role, error) {
	for role, roleID := range roleIDs {
		if roleID == id {
			return role, nil
		}
	}
	return "", ErrInvalidRole
}
