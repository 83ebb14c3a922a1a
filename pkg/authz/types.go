package authz

import (
	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/scopes"
)

// Role is the single role assigned to a user. Every user has exactly one.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProduction   Role = "production"
	RoleSalesManager Role = "sales_manager"
	RoleFinance      Role = "finance"
	RoleViewer       Role = "viewer"
)

// Known reports whether the role is one of the built-in roles. Permission
// checks do not depend on this: any role missing from the capability table
// is denied, known or not.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleProduction, RoleSalesManager, RoleFinance, RoleViewer:
		return true
	}
	return false
}

// Resource and action names used across the capability table and module
// permission checks. Permissions are "resource.action" scope strings.
const (
	ResourceMaterial   = "material"
	ResourceBatch      = "batch"
	ResourceOrder      = "order"
	ResourceCustomer   = "customer"
	ResourceInvoice    = "invoice"
	ResourceCreditNote = "credit_note"
	ResourcePricing    = "pricing"
	ResourceProfile    = "profile"
)

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// CustomSettings carries per-user additions on top of the role. Notably,
// SpecialPermissions widens the role's capability set; "*" grants everything.
type CustomSettings struct {
	DisplayName        string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Title              string   `json:"title,omitempty" yaml:"title,omitempty"`
	SpecialPermissions []string `json:"special_permissions,omitempty" yaml:"special_permissions,omitempty"`
}

// User is an immutable profile snapshot taken from the session layer.
// Permission checks are pure functions of this snapshot; nothing here is
// mutated by the authorization service.
type User struct {
	ID             uuid.UUID       `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Role           Role            `json:"role"`
	Active         bool            `json:"active"`
	Designation    string          `json:"designation,omitempty"`
	CustomSettings *CustomSettings `json:"custom_settings,omitempty"`
}

// specialPermissions returns the user's widening permission list, if any.
func (u User) specialPermissions() []string {
	if u.CustomSettings == nil {
		return nil
	}
	return u.CustomSettings.SpecialPermissions
}

// DefaultRoles returns the built-in role → capability table. Deployments
// that need a different mapping load one through a FileRoleSource instead.
func DefaultRoles() map[Role][]string {
	return map[Role][]string{
		RoleAdmin: {scopes.Wildcard},
		RoleProduction: {
			scopes.Join(ResourceMaterial, ActionRead),
			scopes.Join(ResourceMaterial, ActionCreate),
			scopes.Join(ResourceMaterial, ActionUpdate),
			ResourceBatch + scopes.Delimiter + scopes.Wildcard,
			scopes.Join(ResourceOrder, ActionRead),
			scopes.Join(ResourceCustomer, ActionRead),
		},
		RoleSalesManager: {
			ResourceOrder + scopes.Delimiter + scopes.Wildcard,
			ResourceCustomer + scopes.Delimiter + scopes.Wildcard,
			scopes.Join(ResourceBatch, ActionRead),
			scopes.Join(ResourcePricing, ActionRead),
			scopes.Join(ResourceInvoice, ActionRead),
			scopes.Join(ResourceCreditNote, ActionRead),
		},
		RoleFinance: {
			ResourceInvoice + scopes.Delimiter + scopes.Wildcard,
			ResourceCreditNote + scopes.Delimiter + scopes.Wildcard,
			ResourcePricing + scopes.Delimiter + scopes.Wildcard,
			scopes.Join(ResourceOrder, ActionRead),
			scopes.Join(ResourceCustomer, ActionRead),
		},
		RoleViewer: {
			scopes.Join(ResourceMaterial, ActionRead),
			scopes.Join(ResourceBatch, ActionRead),
			scopes.Join(ResourceOrder, ActionRead),
			scopes.Join(ResourceCustomer, ActionRead),
		},
	}
}

// financialPermissions is the fixed set of scopes behind
// CanAccessFinancialData.
var financialPermissions = []string{
	scopes.Join(ResourceInvoice, ActionRead),
	scopes.Join(ResourceCreditNote, ActionRead),
	scopes.Join(ResourcePricing, ActionRead),
}
