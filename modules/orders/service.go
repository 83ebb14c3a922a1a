package orders

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
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

const (
	selectColumns     = "id, order_number, customer_id, status, total, notes, created_at, updated_at"
	selectItemColumns = "id, order_id, product, quantity, unit_price, line_total"
)

// DB is the query surface the service needs; *pgxpool.Pool satisfies it.
// Begin is used when an order and its items must land together.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Filter narrows an order listing. Zero-valued fields are ignored.
type Filter struct {
	Status       Status
	CustomerID   uuid.UUID
	CreatedAfter time.Time
	Limit        int
}

// SQL builds the parameterized listing query, newest orders first.
func (f Filter) SQL() (string, []any) {
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
	if !f.CreatedAfter.IsZero() {
		args = append(args, f.CreatedAfter)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + selectColumns + " FROM orders")
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

// Service manages customer orders and their line items.
type Service struct {
	db    DB
	authz *authz.Service
	log   *slog.Logger
}

func NewService(db DB, az *authz.Service, log *slog.Logger) *Service {
	return &Service{db: db, authz: az, log: log.With(logger.Component("orders"))}
}

// List returns order headers matching the filter, without items.
func (s *Service) List(ctx context.Context, f Filter) ([]Order, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceOrder, authz.ActionRead) {
		return nil, authz.ErrPermissionDenied
	}

	query, args := f.SQL()
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, errors.Join(ErrFailedToList, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	return out, nil
}

// Get returns one order with its items.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Order, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceOrder, authz.ActionRead) {
		return Order{}, authz.ErrPermissionDenied
	}

	row := s.db.QueryRow(ctx, "SELECT "+selectColumns+" FROM orders WHERE id = $1", id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, errors.Join(ErrFailedToList, err)
	}

	rows, err := s.db.Query(ctx,
		"SELECT "+selectItemColumns+" FROM order_items WHERE order_id = $1 ORDER BY product", id)
	if err != nil {
		return Order{}, errors.Join(ErrFailedToList, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Product, &it.Quantity,
			&it.UnitPrice, &it.LineTotal); err != nil {
			return Order{}, errors.Join(ErrFailedToList, err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return Order{}, errors.Join(ErrFailedToList, err)
	}
	return o, nil
}

// Create validates and records an order with its items in one transaction.
// Line totals and the order total are computed here, not accepted from the
// client.
func (s *Service) Create(ctx context.Context, in Input) (Order, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceOrder, authz.ActionCreate) {
		return Order{}, authz.ErrPermissionDenied
	}
	if verrs := validateInput(in); !verrs.IsEmpty() {
		return Order{}, verrs
	}

	type line struct {
		product  string
		qty      decimal.Decimal
		price    decimal.Decimal
		subtotal decimal.Decimal
	}

	total := decimal.Zero
	lines := make([]line, 0, len(in.Items))
	for _, it := range in.Items {
		// Validation guarantees both parse.
		qty, err := decimal.NewFromString(it.Quantity)
		if err != nil {
			return Order{}, errors.Join(ErrFailedToSave, err)
		}
		price, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			return Order{}, errors.Join(ErrFailedToSave, err)
		}
		sub := qty.Mul(price)
		total = total.Add(sub)
		lines = append(lines, line{product: it.Product, qty: qty, price: price, subtotal: sub})
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return Order{}, errors.Join(ErrFailedToSave, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	row := tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, customer_id, status, total, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+selectColumns,
		in.OrderNumber, in.CustomerID, StatusDraft, total, in.Notes)
	o, err := scanOrder(row)
	if err != nil {
		return Order{}, errors.Join(ErrFailedToSave, err)
	}

	for _, l := range lines {
		var it Item
		err := tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product, quantity, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+selectItemColumns,
			o.ID, l.product, l.qty, l.price, l.subtotal).
			Scan(&it.ID, &it.OrderID, &it.Product, &it.Quantity, &it.UnitPrice, &it.LineTotal)
		if err != nil {
			return Order{}, errors.Join(ErrFailedToSave, err)
		}
		o.Items = append(o.Items, it)
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "order created",
		"order_id", o.ID, "order_number", o.OrderNumber, "total", o.Total)
	return o, nil
}

// SetStatus moves an order to the given state.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) (Order, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceOrder, authz.ActionUpdate) {
		return Order{}, authz.ErrPermissionDenied
	}
	if !status.valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	row := s.db.QueryRow(ctx, `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+selectColumns, id, status)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "order status changed", "order_id", o.ID, "status", o.Status)
	return o, nil
}

// validateInput runs the header rules plus the per-line rules, folding line
// failures into indexed field names like "items[0].quantity".
func validateInput(in Input) validator.ValidationErrors {
	res := rules.ValidateForm(in.record())
	verrs := res.Errors

	if len(in.Items) == 0 {
		verrs = append(verrs, validator.ValidationError{
			Field: "items", Message: "at least one item is required",
		})
		return verrs
	}

	for i, it := range in.Items {
		for _, ve := range itemRules.ValidateForm(it.record()).Errors {
			verrs = append(verrs, validator.ValidationError{
				Field:   fmt.Sprintf("items[%d].%s", i, ve.Field),
				Message: ve.Message,
			})
		}
	}
	return verrs
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.Status,
		&o.Total, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}
