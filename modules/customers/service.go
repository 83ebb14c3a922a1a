package customers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/logger"
)

// DB is the narrow query surface the service needs; *pgxpool.Pool satisfies
// it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Service is a thin pass-through over the customers table: every operation
// checks permission for the user in the context, builds one query, runs it,
// and wraps failures with package sentinels.
type Service struct {
	db    DB
	authz *authz.Service
	log   *slog.Logger
}

func NewService(db DB, az *authz.Service, log *slog.Logger) *Service {
	return &Service{db: db, authz: az, log: log.With(logger.Component("customers"))}
}

// List returns customers matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Customer, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceCustomer, authz.ActionRead) {
		return nil, authz.ErrPermissionDenied
	}

	query, args := f.SQL()
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Get returns one customer by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Customer, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceCustomer, authz.ActionRead) {
		return Customer{}, authz.ErrPermissionDenied
	}

	row := s.db.QueryRow(ctx,
		"SELECT "+selectColumns+" FROM customers WHERE id = $1", id)

	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, errors.Join(ErrFailedToList, err)
	}
	return c, nil
}

// Create validates the input and inserts a new active customer.
func (s *Service) Create(ctx context.Context, in Input) (Customer, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceCustomer, authz.ActionCreate) {
		return Customer{}, authz.ErrPermissionDenied
	}
	if res := rules.ValidateForm(in.record()); !res.Valid {
		return Customer{}, res.Errors
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone, city, channel, active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING `+selectColumns,
		in.Name, in.Email, in.Phone, in.City, in.Channel)

	c, err := scanCustomer(row)
	if err != nil {
		return Customer{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "customer created", "customer_id", c.ID)
	return c, nil
}

// Update validates the input and replaces the customer's writable fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (Customer, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceCustomer, authz.ActionUpdate) {
		return Customer{}, authz.ErrPermissionDenied
	}
	if res := rules.ValidateForm(in.record()); !res.Valid {
		return Customer{}, res.Errors
	}

	row := s.db.QueryRow(ctx, `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, city = $5, channel = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+selectColumns,
		id, in.Name, in.Email, in.Phone, in.City, in.Channel)

	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, errors.Join(ErrFailedToSave, err)
	}
	return c, nil
}

// Deactivate soft-deletes a customer; order history keeps referencing it.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceCustomer, authz.ActionDelete) {
		return authz.ErrPermissionDenied
	}

	tag, err := s.db.Exec(ctx,
		"UPDATE customers SET active = false, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.Channel,
		&c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanCustomers(rows pgx.Rows) ([]Customer, error) {
	var out []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, errors.Join(ErrFailedToList, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	return out, nil
}
