package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

// Status is a batch lifecycle state. Batches move strictly forward:
// planned → in_progress → completed or cancelled.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// transitions lists the states reachable from each state. Terminal states
// have no entry.
var transitions = map[Status][]Status{
	StatusPlanned:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a batch in state from may move to state to.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Batch is one production run turning raw cream into finished ghee.
type Batch struct {
	ID             uuid.UUID       `json:"id"`
	BatchNumber    string          `json:"batch_number"`
	Status         Status          `json:"status"`
	InputQuantity  decimal.Decimal `json:"input_quantity"`
	OutputQuantity decimal.Decimal `json:"output_quantity"`
	YieldPercent   decimal.Decimal `json:"yield_percent"`
	Notes          string          `json:"notes,omitempty"`
	StartedAt      *time.Time      `json:"started_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Input carries the writable fields when planning a batch. Quantities arrive
// as strings so the validation layer decides what counts as a number.
type Input struct {
	BatchNumber   string `json:"batch_number"`
	InputQuantity string `json:"input_quantity"`
	Notes         string `json:"notes"`
}

func (in Input) record() map[string]any {
	return map[string]any{
		"batch_number":   in.BatchNumber,
		"input_quantity": in.InputQuantity,
		"notes":          in.Notes,
	}
}

// CompleteInput carries the close-out figures for a finished batch.
type CompleteInput struct {
	OutputQuantity string `json:"output_quantity"`
	Notes          string `json:"notes"`
}

func (in CompleteInput) record() map[string]any {
	return map[string]any{
		"output_quantity": in.OutputQuantity,
		"notes":           in.Notes,
	}
}

// Rules is the batch-planning rule-set.
func Rules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("batch_number", validator.Required(), validator.MaxLen(40)).
		Field("input_quantity", validator.Required(), validator.Positive()).
		Field("notes", validator.MaxLen(500))
}

// CompleteRules is the close-out rule-set. Output may be zero (a scrapped
// run) but never negative.
func CompleteRules() *validator.RuleSet {
	return validator.NewRuleSet().
		Field("output_quantity", validator.Required(), validator.NonNegative()).
		Field("notes", validator.MaxLen(500))
}

var (
	rules         = Rules()
	completeRules = CompleteRules()
)
