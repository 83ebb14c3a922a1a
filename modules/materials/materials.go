package materials

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

// Intake is one raw-material delivery logged against a supplier.
type Intake struct {
	ID           uuid.UUID       `json:"id"`
	MaterialName string          `json:"material_name"`
	SupplierName string          `json:"supplier_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	LotNumber    string          `json:"lot_number,omitempty"`
	ReceivedAt   time.Time       `json:"received_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Input carries the writable intake fields. Quantity and cost arrive as
// strings so the validation layer, not JSON decoding, decides what counts as
// a number.
type Input struct {
	MaterialName string    `json:"material_name"`
	SupplierName string    `json:"supplier_name"`
	Quantity     string    `json:"quantity"`
	Unit         string    `json:"unit"`
	CostPerUnit  string    `json:"cost_per_unit"`
	LotNumber    string    `json:"lot_number"`
	ReceivedAt   time.Time `json:"received_at"`
}

func (in Input) record() map[string]any {
	return map[string]any{
		"material_name": in.MaterialName,
		"supplier_name": in.SupplierName,
		"quantity":      in.Quantity,
		"unit":          in.Unit,
		"cost_per_unit": in.CostPerUnit,
		"lot_number":    in.LotNumber,
	}
}

// Rules is the intake form's rule-set. Quantity and cost must be strictly
// positive; zero-quantity deliveries are data-entry mistakes.
func Rules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("material_name", validator.Required(), validator.MaxLen(120)).
		Field("supplier_name", validator.Required(), validator.MaxLen(120)).
		Field("quantity", validator.Required(), validator.Positive()).
		Field("unit", validator.Required(), validator.OneOf("kg", "l", "unit")).
		Field("cost_per_unit", validator.Required(), validator.Positive()).
		Field("lot_number", validator.MaxLen(40))
}

var rules = Rules()
