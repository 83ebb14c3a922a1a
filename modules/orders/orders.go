package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

// Status is an order lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) valid() bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a customer order with its line items.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Status      Status          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Notes       string          `json:"notes,omitempty"`
	Items       []Item          `json:"items,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Item is one order line. LineTotal is quantity times unit price, computed
// at write time.
type Item struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Input carries the writable order fields. Money and quantities arrive as
// strings so the validation layer decides what counts as a number.
type Input struct {
	OrderNumber string      `json:"order_number"`
	CustomerID  uuid.UUID   `json:"customer_id"`
	Notes       string      `json:"notes"`
	Items       []ItemInput `json:"items"`
}

type ItemInput struct {
	Product   string `json:"product"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

func (in Input) record() map[string]any {
	customer := ""
	if in.CustomerID != uuid.Nil {
		customer = in.CustomerID.String()
	}
	return map[string]any{
		"order_number": in.OrderNumber,
		"customer_id":  customer,
		"notes":        in.Notes,
	}
}

func (in ItemInput) record() map[string]any {
	return map[string]any{
		"product":    in.Product,
		"quantity":   in.Quantity,
		"unit_price": in.UnitPrice,
	}
}

// Rules is the order-header rule-set. Items are validated per line with
// ItemRules.
func Rules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("order_number", validator.Required(), validator.MaxLen(40)).
		Field("customer_id", validator.Required()).
		Field("notes", validator.MaxLen(500))
}

// ItemRules is the per-line rule-set.
func ItemRules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("product", validator.Required(), validator.MaxLen(120)).
		Field("quantity", validator.Required(), validator.Positive()).
		Field("unit_price", validator.Required(), validator.Positive())
}

var (
	rules     = Rules()
	itemRules = ItemRules()
)
