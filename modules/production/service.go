package production

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

const selectColumns = "id, batch_number, status, input_quantity, output_quantity, yield_percent, notes, started_at, completed_at, created_at, updated_at"

// DB is the narrow query surface the service needs; *pgxpool.Pool satisfies
// it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Filter narrows a batch listing. Zero-valued fields are ignored.
type Filter struct {
	Status Status
	Search string
	Limit  int
}

// SQL builds the parameterized listing query, newest batches first.
func (f Filter) SQL() (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("batch_number ILIKE $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + selectColumns + " FROM production_batches")
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

// Service manages production batches and their lifecycle.
type Service struct {
	db    DB
	authz *authz.Service
	log   *slog.Logger
}

func NewService(db DB, az *authz.Service, log *slog.Logger) *Service {
	return &Service{db: db, authz: az, log: log.With(logger.Component("production"))}
}

// List returns batches matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Batch, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceBatch, authz.ActionRead) {
		return nil, authz.ErrPermissionDenied
	}

	query, args := f.SQL()
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	defer rows.Close()

	var out []Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, errors.Join(ErrFailedToList, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	return out, nil
}

// Get returns one batch by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Batch, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceBatch, authz.ActionRead) {
		return Batch{}, authz.ErrPermissionDenied
	}

	row := s.db.QueryRow(ctx,
		"SELECT "+selectColumns+" FROM production_batches WHERE id = $1", id)
	b, err := scanBatch(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Batch{}, ErrNotFound
	}
	if err != nil {
		return Batch{}, errors.Join(ErrFailedToList, err)
	}
	return b, nil
}

// Plan validates and records a new batch in the planned state.
func (s *Service) Plan(ctx context.Context, in Input) (Batch, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceBatch, authz.ActionCreate) {
		return Batch{}, authz.ErrPermissionDenied
	}
	if res := rules.ValidateForm(in.record()); !res.Valid {
		return Batch{}, res.Errors
	}

	qty, err := decimal.NewFromString(in.InputQuantity)
	if err != nil {
		return Batch{}, errors.Join(ErrFailedToSave, err)
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO production_batches (batch_number, status, input_quantity, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING `+selectColumns,
		in.BatchNumber, StatusPlanned, qty, in.Notes)

	b, err := scanBatch(row)
	if err != nil {
		return Batch{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "batch planned", "batch_id", b.ID, "batch_number", b.BatchNumber)
	return b, nil
}

// Start moves a planned batch into in_progress.
func (s *Service) Start(ctx context.Context, id uuid.UUID) (Batch, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceBatch, authz.ActionUpdate) {
		return Batch{}, authz.ErrPermissionDenied
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return Batch{}, err
	}
	if !CanTransition(b.Status, StatusInProgress) {
		return Batch{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, StatusInProgress)
	}

	row := s.db.QueryRow(ctx, `
		UPDATE production_batches
		SET status = $2, started_at = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+selectColumns,
		id, StatusInProgress, time.Now().UTC())

	b, err = scanBatch(row)
	if err != nil {
		return Batch{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "batch started", "batch_id", b.ID)
	return b, nil
}

// Complete closes out an in-progress batch with its output figures. Yield is
// computed here, not accepted from the client.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, in CompleteInput) (Batch, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceBatch, authz.ActionUpdate) {
		return Batch{}, authz.ErrPermissionDenied
	}
	if res := completeRules.ValidateForm(in.record()); !res.Valid {
		return Batch{}, res.Errors
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return Batch{}, err
	}
	if !CanTransition(b.Status, StatusCompleted) {
		return Batch{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, StatusCompleted)
	}

	out, err := decimal.NewFromString(in.OutputQuantity)
	if err != nil {
		return Batch{}, errors.Join(ErrFailedToSave, err)
	}

	yield := decimal.Zero
	if b.InputQuantity.IsPositive() {
		yield = out.Div(b.InputQuantity).Mul(decimal.NewFromInt(100)).Round(2)
	}

	notes := b.Notes
	if in.Notes != "" {
		notes = in.Notes
	}

	row := s.db.QueryRow(ctx, `
		UPDATE production_batches
		SET status = $2, output_quantity = $3, yield_percent = $4, notes = $5,
		    completed_at = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+selectColumns,
		id, StatusCompleted, out, yield, notes, time.Now().UTC())

	b, err = scanBatch(row)
	if err != nil {
		return Batch{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "batch completed",
		"batch_id", b.ID, "yield_percent", b.YieldPercent)
	return b, nil
}

// Cancel abandons a batch that has not completed.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (Batch, error) {
	if !s.authz.HasPermissionFromContext(ctx, authz.ResourceBatch, authz.ActionUpdate) {
		return Batch{}, authz.ErrPermissionDenied
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return Batch{}, err
	}
	if !CanTransition(b.Status, StatusCancelled) {
		return Batch{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, StatusCancelled)
	}

	row := s.db.QueryRow(ctx, `
		UPDATE production_batches
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+selectColumns,
		id, StatusCancelled)

	b, err = scanBatch(row)
	if err != nil {
		return Batch{}, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "batch cancelled", "batch_id", b.ID)
	return b, nil
}

func scanBatch(row pgx.Row) (Batch, error) {
	var b Batch
	err := row.Scan(&b.ID, &b.BatchNumber, &b.Status, &b.InputQuantity,
		&b.OutputQuantity, &b.YieldPercent, &b.Notes,
		&b.StartedAt, &b.CompletedAt, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}
