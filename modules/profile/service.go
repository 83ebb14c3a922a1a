package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/logger"
)

const selectColumns = "id, email, name, role, active, designation, custom_settings, created_at, updated_at"

// DefaultCacheTTL bounds how stale a cached snapshot may get. Role and
// override changes take effect within this window without a restart.
const DefaultCacheTTL = 5 * time.Minute

// DB is the narrow query surface the service needs; *pgxpool.Pool satisfies
// it.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Cache is the subset of the redis client the snapshot cache uses.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Service loads profiles and produces the authorization snapshots the rest
// of the application runs on. Overrides are applied here, at hydration, so
// permission checks downstream stay pure.
type Service struct {
	db        DB
	cache     Cache
	overrides authz.Overrides
	ttl       time.Duration
	log       *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithCache enables the redis snapshot cache.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithOverrides sets the email-keyed override table applied at hydration.
func WithOverrides(o authz.Overrides) Option {
	return func(s *Service) { s.overrides = o }
}

func NewService(db DB, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		db:  db,
		ttl: DefaultCacheTTL,
		log: log.With(logger.Component("profile")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate returns the authorization snapshot for a user id: cached copy if
// fresh, otherwise the stored row with overrides applied. It backs the
// per-request user middleware.
func (s *Service) Hydrate(ctx context.Context, id uuid.UUID) (authz.User, error) {
	if user, ok := s.cached(ctx, id); ok {
		return user, nil
	}

	p, err := s.load(ctx, id)
	if err != nil {
		return authz.User{}, err
	}

	user := s.overrides.Apply(p.snapshot())
	s.store(ctx, user)
	return user, nil
}

// Get returns the caller's own stored profile row, without overrides.
// Hydrate is the authorization view; this is what is persisted.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Profile, error) {
	caller, ok := authz.UserFromContext(ctx)
	if !ok || caller.ID != id {
		return Profile{}, authz.ErrPermissionDenied
	}
	return s.load(ctx, id)
}

// Update applies a self-service change to the caller's own profile and
// drops the cached snapshot so the change is visible immediately.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Profile, error) {
	caller, ok := authz.UserFromContext(ctx)
	if !ok || caller.ID != id {
		return Profile{}, authz.ErrPermissionDenied
	}
	if res := updateRules.ValidateForm(in.record()); !res.Valid {
		return Profile{}, res.Errors
	}

	row := s.db.QueryRow(ctx, `
		UPDATE user_profiles SET name = $2, designation = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+selectColumns,
		id, in.Name, in.Designation)

	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, errors.Join(ErrFailedToSave, err)
	}

	s.invalidate(ctx, id)
	s.log.InfoContext(ctx, "profile updated", "user_id", p.ID)
	return p, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (Profile, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+selectColumns+" FROM user_profiles WHERE id = $1", id)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, errors.Join(ErrFailedToLoad, err)
	}
	return p, nil
}

func cacheKey(id uuid.UUID) string {
	return "profile:snapshot:" + id.String()
}

func (s *Service) cached(ctx context.Context, id uuid.UUID) (authz.User, bool) {
	if s.cache == nil {
		return authz.User{}, false
	}

	raw, err := s.cache.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "snapshot cache read failed", logger.Error(err))
		}
		return authz.User{}, false
	}

	var user authz.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return authz.User{}, false
	}
	return user, true
}

func (s *Service) store(ctx context.Context, user authz.User) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(user.ID), raw, s.ttl).Err(); err != nil {
		s.log.WarnContext(ctx, "snapshot cache write failed", logger.Error(err))
	}
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey(id)).Err(); err != nil {
		s.log.WarnContext(ctx, "snapshot cache delete failed", logger.Error(err))
	}
}

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.Email, &p.Name, &p.Role, &p.Active,
		&p.Designation, &p.Settings, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
