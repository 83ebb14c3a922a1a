package materials

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

const selectColumns = "id, material_name, supplier_name, quantity, unit, cost_per_unit, total_cost, lot_number, received_at, created_at"

// DB is the narrow query surface the service needs; *pgxpool.Pool satisfies
// it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Filter narrows an intake listing. Zero-valued fields are ignored.
type Filter struct {
	Supplier      string
	Material      string
	ReceivedAfter time.Time
	Limit         int
}

// SQL builds the parameterized listing query, newest deliveries first.
func (f Filter) SQL() (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Supplier != "" {
		args = append(args, "%"+f.Supplier+"%")
		conds = append(conds, fmt.Sprintf("supplier_name ILIKE $%d", len(args)))
	}
	if f.Material != "" {
		args = append(args, "%"+f.Material+"%")
		conds = append(conds, fmt.Sprintf("material_name ILIKE $%d", len(args)))
	}
	if !f.ReceivedAfter.IsZero() {
		args = append(args, f.ReceivedAfter)
		conds = append(conds, fmt.Sprintf("received_at >= $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + selectColumns + " FROM raw_material_intake")
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY received_at DESC")

	if f.Limit > 0 {
		args = append(args, f.Limit)
		b.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	return b.String(), args
}

// Service is a thin pass-through over the raw_material_intake table.
type Service struct {
	db    DB
	authz *authz.Service
	log   *slog.Logger
}

func NewService(db DB, az *authz.Service, log *slog.Logger) *Service {
	return &Service{db: db, authz: az, log: log.With(logger.Component("materials"))}
}

// List returns intake entries matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Intake, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceMaterial, authz.ActionRead) {
		return nil, authz.ErrPermissionDenied
	}

	query, args := f.SQL()
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	defer rows.Close()

	var out []Intake
	for rows.Next() {
		var it Intake
		if err := rows.Scan(&it.ID, &it.MaterialName, &it.SupplierName, &it.Quantity,
			&it.Unit, &it.CostPerUnit, &it.TotalCost, &it.LotNumber,
			&it.ReceivedAt, &it.CreatedAt); err != nil {
			return nil, errors.Join(ErrFailedToList, err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	return out, nil
}

// Get returns one intake entry by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Intake, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceMaterial, authz.ActionRead) {
		return Intake{}, authz.ErrPermissionDenied
	}

	row := s.db.QueryRow(ctx,
		"SELECT "+selectColumns+" FROM raw_material_intake WHERE id = $1", id)

	var it Intake
	err := row.Scan(&it.ID, &it.MaterialName, &it.SupplierName, &it.Quantity,
		&it.Unit, &it.CostPerUnit, &it.TotalCost, &it.LotNumber,
		&it.ReceivedAt, &it.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Intake{}, ErrNotFound
	}
	if err != nil {
		return Intake{}, errors.Join(ErrFailedToList, err)
	}
	return it, nil
}

// Log validates and records one delivery. Total cost is computed here, not
// accepted from the client.
func (s *Service) Log(ctx context.Context, in Input) (Intake, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceMaterial, authz.ActionCreate) {
		return Intake{}, authz.ErrPermissionDenied
	}
	if res := rules.ValidateForm(in.record()); !res.Valid {
		return Intake{}, res.Errors
	}

	// Validation guarantees both parse.
	qty, err := decimal.NewFromString(in.Quantity)
	if err != nil {
		return Intake{}, errors.Join(ErrFailedToSave, err)
	}
	cost, err := decimal.NewFromString(in.CostPerUnit)
	if err != nil {
		return Intake{}, errors.Join(ErrFailedToSave, err)
	}

	receivedAt := in.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO raw_material_intake
			(material_name, supplier_name, quantity, unit, cost_per_unit, total_cost, lot_number, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+selectColumns,
		in.MaterialName, in.SupplierName, qty, in.Unit, cost, qty.Mul(cost), in.LotNumber, receivedAt)

	var it Intake
	if err := row.Scan(&it.ID, &it.MaterialName, &it.SupplierName, &it.Quantity,
		&it.Unit, &it.CostPerUnit, &it.TotalCost, &it.LotNumber,
		&it.ReceivedAt, &it.CreatedAt); err != nil {
		return Intake{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "material intake logged",
		"intake_id", it.ID, "material", it.MaterialName, "total_cost", it.TotalCost)
	return it, nil
}
