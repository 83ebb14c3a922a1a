package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

// InvoiceStatus is an invoice payment state.
type InvoiceStatus string

const (
	InvoiceIssued  InvoiceStatus = "issued"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceVoid    InvoiceStatus = "void"
)

// Invoice bills a customer order.
type Invoice struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	OrderID       uuid.UUID       `json:"order_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        InvoiceStatus   `json:"status"`
	DueDate       time.Time       `json:"due_date"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreditNote refunds part or all of an invoice.
type CreditNote struct {
	ID         uuid.UUID       `json:"id"`
	NoteNumber string          `json:"note_number"`
	InvoiceID  uuid.UUID       `json:"invoice_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"created_at"`
}

// InvoiceInput carries the writable invoice fields. Amount arrives as a
// string so the validation layer decides what counts as a number.
type InvoiceInput struct {
	InvoiceNumber string    `json:"invoice_number"`
	OrderID       uuid.UUID `json:"order_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	Amount        string    `json:"amount"`
	DueDate       time.Time `json:"due_date"`
}

func (in InvoiceInput) record() map[string]any {
	order, customer := "", ""
	if in.OrderID != uuid.Nil {
		order = in.OrderID.String()
	}
	if in.CustomerID != uuid.Nil {
		customer = in.CustomerID.String()
	}
	return map[string]any{
		"invoice_number": in.InvoiceNumber,
		"order_id":       order,
		"customer_id":    customer,
		"amount":         in.Amount,
	}
}

// CreditNoteInput carries the writable credit-note fields.
type CreditNoteInput struct {
	NoteNumber string    `json:"note_number"`
	InvoiceID  uuid.UUID `json:"invoice_id"`
	Amount     string    `json:"amount"`
	Reason     string    `json:"reason"`
}

func (in CreditNoteInput) record() map[string]any {
	invoice := ""
	if in.InvoiceID != uuid.Nil {
		invoice = in.InvoiceID.String()
	}
	return map[string]any{
		"note_number": in.NoteNumber,
		"invoice_id":  invoice,
		"amount":      in.Amount,
		"reason":      in.Reason,
	}
}

// InvoiceRules is the invoice rule-set.
func InvoiceRules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("invoice_number", validator.Required(), validator.MaxLen(40)).
		Field("order_id", validator.Required()).
		Field("customer_id", validator.Required()).
		Field("amount", validator.Required(), validator.Positive())
}

// CreditNoteRules is the credit-note rule-set. A reason is mandatory; blind
// refunds are an audit problem.
func CreditNoteRules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("note_number", validator.Required(), validator.MaxLen(40)).
		Field("invoice_id", validator.Required()).
		Field("amount", validator.Required(), validator.Positive()).
		Field("reason", validator.Required(), validator.MaxLen(500))
}

var (
	invoiceRules    = InvoiceRules()
	creditNoteRules = CreditNoteRules()
)
