package authz

import (
	"context"
	"slices"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/scopes"
)

// RoleSource provides the role → capability table the service is built from.
type RoleSource interface {
	// Load returns the capability table. Called once at service construction.
	Load(ctx context.Context) (map[Role][]string, error)
}

// Service answers permission queries against an immutable, precomputed
// role → capability table. Every check is a pure function of the user
// snapshot and the requested scope, so a single Service is safe to share
// across the whole application.
type Service struct {
	roles       map[Role][]string
	sortedRoles []Role
}

// New builds a Service from the given source. The table is normalized and
// copied at construction; source errors fail startup rather than being
// deferred to the first permission check.
func New(ctx context.Context, source RoleSource) (*Service, error) {
	roles, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, ErrNoRolesConfigured
	}

	table := make(map[Role][]string, len(roles))
	sorted := make([]Role, 0, len(roles))
	for role, perms := range roles {
		table[role] = scopes.Normalize(perms)
		sorted = append(sorted, role)
	}
	slices.Sort(sorted)

	return &Service{roles: table, sortedRoles: sorted}, nil
}

// HasPermission reports whether the user may perform action on resource.
//
// Checks are fail-closed: an inactive user is denied everything, and a role
// missing from the capability table grants nothing. Special permissions from
// the user's custom settings are consulted first and widen any role,
// including unknown ones.
func (s *Service) HasPermission(user User, resource, action string) bool {
	return s.can(user, scopes.Join(resource, action))
}

// CanAny reports whether the user holds at least one of the permissions.
func (s *Service) CanAny(user User, permissions ...string) bool {
	if len(permissions) == 0 {
		return false
	}
	for _, p := range permissions {
		if s.can(user, p) {
			return true
		}
	}
	return false
}

// CanAll reports whether the user holds every one of the permissions.
func (s *Service) CanAll(user User, permissions ...string) bool {
	if len(permissions) == 0 {
		return false
	}
	for _, p := range permissions {
		if !s.can(user, p) {
			return false
		}
	}
	return true
}

// CanAccessFinancialData reports whether the user may see financial records:
// invoices, credit notes, and pricing. The user must hold every one of those
// read scopes.
func (s *Service) CanAccessFinancialData(user User) bool {
	return s.CanAll(user, financialPermissions...)
}

// HasPermissionFromContext checks the user stored in the context. A context
// without a user denies, consistent with fail-closed semantics.
func (s *Service) HasPermissionFromContext(ctx context.Context, resource, action string) bool {
	user, ok := UserFromContext(ctx)
	if !ok {
		return false
	}
	return s.HasPermission(user, resource, action)
}

// Roles returns the configured role names in sorted order.
func (s *Service) Roles() []Role {
	return s.sortedRoles
}

func (s *Service) can(user User, permission string) bool {
	if !user.Active {
		return false
	}

	if scopes.Has(user.specialPermissions(), permission) {
		return true
	}

	granted, ok := s.roles[user.Role]
	if !ok {
		return false
	}
	return scopes.Has(granted, permission)
}
