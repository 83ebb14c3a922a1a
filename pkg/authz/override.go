package authz

import (
	"strings"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/scopes"
)

// Override is configuration injected over an ordinary profile for a specific
// person, keyed by email. Zero-valued fields leave the profile untouched;
// SpecialPermissions are merged into whatever the profile already grants.
type Override struct {
	Name               string   `json:"name,omitempty" yaml:"name,omitempty"`
	Designation        string   `json:"designation,omitempty" yaml:"designation,omitempty"`
	Role               Role     `json:"role,omitempty" yaml:"role,omitempty"`
	SpecialPermissions []string `json:"special_permissions,omitempty" yaml:"special_permissions,omitempty"`
}

// Overrides is an injected lookup table of per-email profile overrides.
// It is built once (from a literal map or a config file) and applied at
// profile hydration, never during permission checks.
type Overrides struct {
	byEmail map[string]Override
}

// NewOverrides builds an override table. Email keys are matched
// case-insensitively.
func NewOverrides(entries map[string]Override) Overrides {
	byEmail := make(map[string]Override, len(entries))
	for email, o := range entries {
		byEmail[normalizeEmail(email)] = o
	}
	return Overrides{byEmail: byEmail}
}

// Lookup returns the override configured for the email, if any.
func (o Overrides) Lookup(email string) (Override, bool) {
	ov, ok := o.byEmail[normalizeEmail(email)]
	return ov, ok
}

// Len returns the number of configured overrides.
func (o Overrides) Len() int {
	return len(o.byEmail)
}

// Apply returns the user with its email's override merged in. Users without
// an override pass through unchanged. ID and Email are never modified.
func (o Overrides) Apply(user User) User {
	ov, ok := o.Lookup(user.Email)
	if !ok {
		return user
	}

	if ov.Name != "" {
		user.Name = ov.Name
	}
	if ov.Designation != "" {
		user.Designation = ov.Designation
	}
	if ov.Role != "" {
		user.Role = ov.Role
	}
	if len(ov.SpecialPermissions) > 0 {
		settings := CustomSettings{}
		if user.CustomSettings != nil {
			settings = *user.CustomSettings
		}
		settings.SpecialPermissions = scopes.Normalize(
			append(append([]string{}, settings.SpecialPermissions...), ov.SpecialPermissions...))
		user.CustomSettings = &settings
	}

	return user
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
