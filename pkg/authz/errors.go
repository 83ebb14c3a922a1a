package authz

import "errors"

// Domain errors for the authorization layer. Permission checks themselves
// never return errors; absence of permission is a normal false. These
// sentinels cover construction failures and let calling code classify a
// denied action.
var (
	// ErrPermissionDenied is wrapped by module operations when an action is refused.
	ErrPermissionDenied = errors.New("authz: permission denied")

	// ErrNoRolesConfigured is returned when the role source yields an empty table.
	ErrNoRolesConfigured = errors.New("authz: no roles configured")

	// ErrFailedToLoadRoles is returned when the role configuration file cannot be read.
	ErrFailedToLoadRoles = errors.New("authz: failed to load role configuration")
)
