package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SuriyaVG/GSR-Operations-sub004/internal/api"
	"github.com/SuriyaVG/GSR-Operations-sub004/modules/customers"
	"github.com/SuriyaVG/GSR-Operations-sub004/modules/finance"
	"github.com/SuriyaVG/GSR-Operations-sub004/modules/materials"
	"github.com/SuriyaVG/GSR-Operations-sub004/modules/orders"
	"github.com/SuriyaVG/GSR-Operations-sub004/modules/production"
	"github.com/SuriyaVG/GSR-Operations-sub004/modules/profile"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/config"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/httpserver"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/logger"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/pg"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/redis"
)

type appConfig struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"gsrops"`

	// RolesFile points at an optional YAML role/override table; empty uses
	// the built-in roles and no overrides.
	RolesFile string `env:"AUTHZ_ROLES_FILE"`

	HTTP  httpserver.Config
	PG    pg.Config
	Redis redis.Config
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.AppEnv, cfg.AppName))
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "fatal", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close() //nolint:errcheck

	roleSource := authz.NewDefaultRoleSource()
	overrides := authz.Overrides{}
	if cfg.RolesFile != "" {
		roleSource = authz.NewFileRoleSource(cfg.RolesFile)
		if overrides, err = authz.LoadOverridesFile(cfg.RolesFile); err != nil {
			return err
		}
	}

	az, err := authz.New(ctx, roleSource)
	if err != nil {
		return err
	}

	profiles := profile.NewService(pool, log,
		profile.WithCache(rdb, profile.DefaultCacheTTL),
		profile.WithOverrides(overrides))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(api.WithUser(profiles))

	r.Get("/healthz", httpserver.HealthcheckHandler(map[string]httpserver.Probe{
		"postgres": pg.Healthcheck(pool),
		"redis":    redis.Healthcheck(rdb),
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/customers", customers.Router(customers.NewService(pool, az, log), log))
		r.Mount("/materials", materials.Router(materials.NewService(pool, az, log), log))
		r.Mount("/batches", production.Router(production.NewService(pool, az, log), log))
		r.Mount("/orders", orders.Router(orders.NewService(pool, az, log), log))
		r.Mount("/finance", finance.Router(finance.NewService(pool, az, log), log))
		r.Mount("/profile", profile.Router(profiles, log))
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
