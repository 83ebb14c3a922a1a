package finance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/logger"
)

const (
	invoiceColumns    = "id, invoice_number, order_id, customer_id, amount, status, due_date, paid_at, created_at"
	creditNoteColumns = "id, note_number, invoice_id, amount, reason, created_at"
)

// DB is the narrow query surface the service needs; *pgxpool.Pool satisfies
// it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InvoiceFilter narrows an invoice listing. Zero-valued fields are ignored.
type InvoiceFilter struct {
	Status     InvoiceStatus
	CustomerID uuid.UUID
	DueBefore  time.Time
	Limit      int
}

// SQL builds the parameterized listing query, newest invoices first.
func (f InvoiceFilter) SQL() (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.CustomerID != uuid.Nil {
		args = append(args, f.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if !f.DueBefore.IsZero() {
		args = append(args, f.DueBefore)
		conds = append(conds, fmt.Sprintf("due_date < $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + invoiceColumns + " FROM invoices")
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY created_at DESC")

	if f.Limit > 0 {
		args = append(args, f.Limit)
		b.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	return b.String(), args
}

// Service manages invoices and credit notes. Every read is gated on full
// financial-data access, not just a single scope, so partially-privileged
// roles cannot see money flows.
type Service struct {
	db    DB
	authz *authz.Service
	log   *slog.Logger
}

func NewService(db DB, az *authz.Service, log *slog.Logger) *Service {
	return &Service{db: db, authz: az, log: log.With(logger.Component("finance"))}
}

func (s *Service) canRead(ctx context.Context) bool {
	user, ok := authz.UserFromContext(ctx)
	if !ok {
		return false
	}
	return s.authz.CanAccessFinancialData(user)
}

// ListInvoices returns invoices matching the filter.
func (s *Service) ListInvoices(ctx context.Context, f InvoiceFilter) ([]Invoice, error) {
	if !s.canRead(ctx) {
		return nil, authz.ErrPermissionDenied
	}

	query, args := f.SQL()
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, errors.Join(ErrFailedToList, err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	return out, nil
}

// GetInvoice returns one invoice by id.
func (s *Service) GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error) {
	if !s.canRead(ctx) {
		return Invoice{}, authz.ErrPermissionDenied
	}

	row := s.db.QueryRow(ctx, "SELECT "+invoiceColumns+" FROM invoices WHERE id = $1", id)
	inv, err := scanInvoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, ErrNotFound
	}
	if err != nil {
		return Invoice{}, errors.Join(ErrFailedToList, err)
	}
	return inv, nil
}

// CreateInvoice validates and records an invoice in the issued state.
func (s *Service) CreateInvoice(ctx context.Context, in InvoiceInput) (Invoice, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceInvoice, authz.ActionCreate) {
		return Invoice{}, authz.ErrPermissionDenied
	}
	if res := invoiceRules.ValidateForm(in.record()); !res.Valid {
		return Invoice{}, res.Errors
	}

	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return Invoice{}, errors.Join(ErrFailedToSave, err)
	}

	dueDate := in.DueDate
	if dueDate.IsZero() {
		dueDate = time.Now().UTC().AddDate(0, 0, 30)
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO invoices (invoice_number, order_id, customer_id, amount, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+invoiceColumns,
		in.InvoiceNumber, in.OrderID, in.CustomerID, amount, InvoiceIssued, dueDate)

	inv, err := scanInvoice(row)
	if err != nil {
		return Invoice{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "invoice created",
		"invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber, "amount", inv.Amount)
	return inv, nil
}

// MarkPaid settles an invoice.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) (Invoice, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceInvoice, authz.ActionUpdate) {
		return Invoice{}, authz.ErrPermissionDenied
	}

	row := s.db.QueryRow(ctx, `
		UPDATE invoices SET status = $2, paid_at = $3
		WHERE id = $1
		RETURNING `+invoiceColumns,
		id, InvoicePaid, time.Now().UTC())

	inv, err := scanInvoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, ErrNotFound
	}
	if err != nil {
		return Invoice{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "invoice paid", "invoice_id", inv.ID)
	return inv, nil
}

// ListCreditNotes returns the credit notes issued against an invoice, or all
// notes when invoiceID is uuid.Nil.
func (s *Service) ListCreditNotes(ctx context.Context, invoiceID uuid.UUID) ([]CreditNote, error) {
	if !s.canRead(ctx) {
		return nil, authz.ErrPermissionDenied
	}

	query := "SELECT " + creditNoteColumns + " FROM credit_notes ORDER BY created_at DESC"
	var args []any
	if invoiceID != uuid.Nil {
		query = "SELECT " + creditNoteColumns + " FROM credit_notes WHERE invoice_id = $1 ORDER BY created_at DESC"
		args = append(args, invoiceID)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	defer rows.Close()

	var out []CreditNote
	for rows.Next() {
		var cn CreditNote
		if err := rows.Scan(&cn.ID, &cn.NoteNumber, &cn.InvoiceID, &cn.Amount,
			&cn.Reason, &cn.CreatedAt); err != nil {
			return nil, errors.Join(ErrFailedToList, err)
		}
		out = append(out, cn)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	return out, nil
}

// CreateCreditNote validates and records a refund against an invoice. The
// note may not exceed the invoice amount.
func (s *Service) CreateCreditNote(ctx context.Context, in CreditNoteInput) (CreditNote, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceCreditNote, authz.ActionCreate) {
		return CreditNote{}, authz.ErrPermissionDenied
	}
	if res := creditNoteRules.ValidateForm(in.record()); !res.Valid {
		return CreditNote{}, res.Errors
	}

	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return CreditNote{}, errors.Join(ErrFailedToSave, err)
	}

	var invoiceAmount decimal.Decimal
	err = s.db.QueryRow(ctx, "SELECT amount FROM invoices WHERE id = $1", in.InvoiceID).
		Scan(&invoiceAmount)
	if errors.Is(err, pgx.ErrNoRows) {
		return CreditNote{}, ErrNotFound
	}
	if err != nil {
		return CreditNote{}, errors.Join(ErrFailedToSave, err)
	}
	if amount.GreaterThan(invoiceAmount) {
		return CreditNote{}, fmt.Errorf("%w: %s over %s", ErrExceedsInvoice, amount, invoiceAmount)
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO credit_notes (note_number, invoice_id, amount, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING `+creditNoteColumns,
		in.NoteNumber, in.InvoiceID, amount, in.Reason)

	var cn CreditNote
	if err := row.Scan(&cn.ID, &cn.NoteNumber, &cn.InvoiceID, &cn.Amount,
		&cn.Reason, &cn.CreatedAt); err != nil {
		return CreditNote{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "credit note created",
		"note_id", cn.ID, "invoice_id", cn.InvoiceID, "amount", cn.Amount)
	return cn, nil
}

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.OrderID, &inv.CustomerID,
		&inv.Amount, &inv.Status, &inv.DueDate, &inv.PaidAt, &inv.CreatedAt)
	return inv, err
}
