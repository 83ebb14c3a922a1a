package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

// Profile is the stored user profile row behind the authorization snapshot.
type Profile struct {
	ID          uuid.UUID             `json:"id"`
	Email       string                `json:"email"`
	Name        string                `json:"name"`
	Role        authz.Role            `json:"role"`
	Active      bool                  `json:"active"`
	Designation string                `json:"designation,omitempty"`
	Settings    *authz.CustomSettings `json:"custom_settings,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// snapshot converts the row into the immutable form permission checks use.
func (p Profile) snapshot() authz.User {
	return authz.User{
		ID:             p.ID,
		Email:          p.Email,
		Name:           p.Name,
		Role:           p.Role,
		Active:         p.Active,
		Designation:    p.Designation,
		CustomSettings: p.Settings,
	}
}

// UpdateInput carries the self-service profile fields. Role and active are
// deliberately absent: those change through admin tooling, not here.
type UpdateInput struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

func (in UpdateInput) record() map[string]any {
	return map[string]any{
		"name":        in.Name,
		"designation": in.Designation,
	}
}

// UpdateRules is the self-service update rule-set.
func UpdateRules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("name", validator.Required(), validator.MaxLen(120)).
		Field("designation", validator.MaxLen(120))
}

var updateRules = UpdateRules()
