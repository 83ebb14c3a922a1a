package authz

import "context"

// inMemRoleSource serves a capability table from memory. The table is deep
// copied on construction so later mutation of the caller's map cannot leak
// into the service.
type inMemRoleSource struct {
	roles map[Role][]string
}

// NewInMemRoleSource creates a RoleSource over the given capability table.
func NewInMemRoleSource(roles map[Role][]string) RoleSource {
	rolesCopy := make(map[Role][]string, len(roles))
	for role, perms := range roles {
		permsCopy := make([]string, len(perms))
		copy(permsCopy, perms)
		rolesCopy[role] = permsCopy
	}
	return &inMemRoleSource{roles: rolesCopy}
}

// NewDefaultRoleSource creates a RoleSource over the built-in capability
// table.
func NewDefaultRoleSource() RoleSource {
	return &inMemRoleSource{roles: DefaultRoles()}
}

func (s *inMemRoleSource) Load(ctx context.Context) (map[Role][]string, error) {
	return s.roles, nil
}
