// Package authz maps user roles to capability sets and answers yes/no
// permission queries for the operations backend.
//
// Permissions are "resource.action" scope strings ("order.create",
// "invoice.read") matched through the scopes package, so a capability table
// entry may grant a single action, a full resource ("batch.*"), or
// everything ("*").
//
// # Model
//
// Every user carries exactly one Role. The Service precomputes a role →
// capability table at construction from a RoleSource (the built-in table, a
// literal map, or a YAML file) and then answers checks as pure functions of
// the user snapshot:
//
//	svc, err := authz.New(ctx, authz.NewDefaultRoleSource())
//	if svc.HasPermission(user, authz.ResourceOrder, authz.ActionCreate) {
//	    // proceed
//	}
//
// Checks are fail-closed: inactive users and roles missing from the table
// are denied everything. A user's custom settings may carry special
// permissions that widen the role's set; a "*" entry grants everything
// regardless of role.
//
// # Special-user overrides
//
// An Overrides table injects per-person configuration (name, designation,
// role, extra permissions) keyed by email. It is applied once, at profile
// hydration, and never consulted during permission checks. Only listed
// emails are affected; ID and Email are never rewritten.
package authz
