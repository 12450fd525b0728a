package schemas

// Role is the access level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Roles lists every Role value.
func Roles() []Role {
	return []Role{RoleUser, RoleAdmin}
}

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}
