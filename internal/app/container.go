package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/inventory-api/internal/masterdata/categories"
	"github.com/odyssey-erp/inventory-api/internal/masterdata/products"
	"github.com/odyssey-erp/inventory-api/internal/masterdata/suppliers"
	"github.com/odyssey-erp/inventory-api/internal/observability"
	"github.com/odyssey-erp/inventory-api/internal/orders"
	"github.com/odyssey-erp/inventory-api/internal/platform/cache"
	"github.com/odyssey-erp/inventory-api/internal/platform/db"
	"github.com/odyssey-erp/inventory-api/internal/reports"
	"github.com/odyssey-erp/inventory-api/internal/roles"
	"github.com/odyssey-erp/inventory-api/internal/shared"
	"github.com/odyssey-erp/inventory-api/internal/users"
	"github.com/odyssey-erp/inventory-api/jobs"
)

// Services exposes every domain service built on one connection pool.
type Services struct {
	Categories *categories.Service
	Suppliers  *suppliers.Service
	Products   *products.Service
	Orders     *orders.Service
	Roles      *roles.Service
	Users      *users.Service
	Reports    *reports.Service
}

// Container owns the process-wide resources. Close releases them in reverse order.
type Container struct {
	Config   *Config
	Logger   *slog.Logger
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Jobs     *jobs.Client
	Queue    *asynq.Inspector
	Metrics  *observability.Metrics
	Services Services
}

// Connect opens the database pool and, when configured, the Redis client.
func Connect(ctx context.Context, cfg *Config, logger *slog.Logger) (*Container, error) {
	pool, err := db.New(ctx, db.Options{
		DSN:              cfg.PGDSN,
		MaxConns:         cfg.PGMaxConns,
		StatementTimeout: cfg.PGStatementTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	c := &Container{Config: cfg, Logger: logger, Pool: pool}

	if cfg.RedisAddr != "" {
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			// Report cache is optional.
			logger.Warn("redis unavailable, report cache disabled", slog.String("addr", cfg.RedisAddr), slog.Any("error", err))
		} else {
			c.Redis = client
			if opt, err := jobs.RedisOpt(cfg.RedisAddr); err != nil {
				logger.Warn("job queue disabled", slog.Any("error", err))
			} else {
				c.Jobs = jobs.NewClient(opt, logger)
				c.Queue = asynq.NewInspector(opt)
			}
		}
	}

	var warmer shared.ChangeNotifier
	if c.Jobs != nil {
		warmer = c.Jobs
	}
	c.Services = NewServices(pool, c.Redis, cfg, logger, warmer)
	return c, nil
}

// NewServices wires repositories and services. rdb and warmer may be nil; warmer
// is bumped after the report generation on writes to report inputs.
func NewServices(pool *pgxpool.Pool, rdb *redis.Client, cfg *Config, logger *slog.Logger, warmer shared.ChangeNotifier) Services {
	var reportCache *reports.Cache
	if rdb != nil {
		reportCache = reports.NewCache(rdb, cfg.ReportCacheTTL)
	}
	reportService := reports.NewService(reports.NewRepository(pool), reportCache, logger)
	var notifier shared.ChangeNotifier = reportService
	if warmer != nil {
		notifier = shared.Notifiers{reportService, warmer}
	}

	return Services{
		Categories: categories.NewService(categories.NewRepository(pool), logger),
		Suppliers:  suppliers.NewService(suppliers.NewRepository(pool), logger, notifier),
		Products:   products.NewService(products.NewRepository(pool), logger, notifier),
		Orders:     orders.NewService(orders.NewRepository(pool), logger, notifier),
		Roles:      roles.NewService(roles.NewRepository(pool), logger),
		Users:      users.NewService(users.NewRepository(pool), logger),
		Reports:    reportService,
	}
}

// Handler builds the HTTP router over the container's services.
func (c *Container) Handler() http.Handler {
	if c.Metrics == nil {
		c.Metrics = observability.NewMetrics()
		if c.Pool != nil {
			c.Metrics.ObservePool(c.Pool.Stat)
		}
	}
	return NewRouter(RouterParams{
		Logger:            c.Logger,
		Config:            c.Config,
		CategoriesHandler: categories.NewHandler(c.Logger, c.Services.Categories),
		SuppliersHandler:  suppliers.NewHandler(c.Logger, c.Services.Suppliers),
		ProductsHandler:   products.NewHandler(c.Logger, c.Services.Products),
		OrdersHandler:     orders.NewHandler(c.Logger, c.Services.Orders),
		RolesHandler:      roles.NewHandler(c.Logger, c.Services.Roles),
		UsersHandler:      users.NewHandler(c.Logger, c.Services.Users),
		ReportsHandler:    reports.NewHandler(c.Logger, c.Services.Reports),
		JobsHandler:       c.jobsHandler(),
		Pool:              pinger(c.Pool),
		Metrics:           c.Metrics,
	})
}

func (c *Container) jobsHandler() *jobs.Handler {
	if c.Queue == nil {
		return nil
	}
	return jobs.NewHandler(c.Queue, c.Logger)
}

// Close releases the job queue clients, the Redis client and the pool.
func (c *Container) Close() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			c.Logger.Warn("queue inspector close", slog.Any("error", err))
		}
	}
	if err := c.Jobs.Close(); err != nil {
		c.Logger.Warn("job client close", slog.Any("error", err))
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("redis close", slog.Any("error", err))
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// pinger keeps a nil pool from becoming a non-nil interface.
func pinger(pool *pgxpool.Pool) Pinger {
	if pool == nil {
		return nil
	}
	return pool
}
