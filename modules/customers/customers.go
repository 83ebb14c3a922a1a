package customers

import (
	"time"

	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

// Sales channels a customer can belong to.
const (
	ChannelDirect      = "direct"
	ChannelDistributor = "distributor"
	ChannelOnline      = "online"
)

// Customer is one buyer account.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	City      string    `json:"city,omitempty"`
	Channel   string    `json:"channel"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input carries the writable customer fields for create and update.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Channel string `json:"channel"`
}

func (in Input) record() map[string]any {
	return map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   in.Phone,
		"city":    in.City,
		"channel": in.Channel,
	}
}

// Rules is the customer form's rule-set. Email and phone are optional but
// validated when present.
func Rules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("name", validator.Required(), validator.MaxLen(120)).
		Field("email", validator.Email()).
		Field("phone", validator.Phone()).
		Field("city", validator.MaxLen(80)).
		Field("channel", validator.Required(), validator.OneOf(ChannelDirect, ChannelDistributor, ChannelOnline))
}

var rules = Rules()
