package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/inventory-api/internal/masterdata/categories"
	"github.com/odyssey-erp/inventory-api/internal/masterdata/products"
	"github.com/odyssey-erp/inventory-api/internal/masterdata/suppliers"
	"github.com/odyssey-erp/inventory-api/internal/observability"
	"github.com/odyssey-erp/inventory-api/internal/orders"
	"github.com/odyssey-erp/inventory-api/internal/platform/httpx"
	"github.com/odyssey-erp/inventory-api/internal/reports"
	"github.com/odyssey-erp/inventory-api/internal/roles"
	"github.com/odyssey-erp/inventory-api/internal/users"
	"github.com/odyssey-erp/inventory-api/jobs"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	CategoriesHandler *categories.Handler
	SuppliersHandler  *suppliers.Handler
	ProductsHandler   *products.Handler
	OrdersHandler     *orders.Handler
	RolesHandler      *roles.Handler
	UsersHandler      *users.Handler
	ReportsHandler    *reports.Handler
	JobsHandler       *jobs.Handler
	Pool              Pinger
	Metrics           *observability.Metrics
}

// NewRouter constructs the chi.Router with API defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", healthHandler(params.Pool))
	if params.Metrics != nil {
		r.Handle("/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		mount := func(path string, m interface{ MountRoutes(chi.Router) }) {
			r.Route(path, m.MountRoutes)
		}
		if params.CategoriesHandler != nil {
			mount("/categories", params.CategoriesHandler)
		}
		if params.SuppliersHandler != nil {
			mount("/suppliers", params.SuppliersHandler)
		}
		if params.ProductsHandler != nil {
			mount("/products", params.ProductsHandler)
		}
		if params.OrdersHandler != nil {
			mount("/orders", params.OrdersHandler)
		}
		if params.RolesHandler != nil {
			mount("/roles", params.RolesHandler)
		}
		if params.UsersHandler != nil {
			mount("/users", params.UsersHandler)
		}
		if params.ReportsHandler != nil {
			mount("/reports", params.ReportsHandler)
		}
		if params.JobsHandler != nil {
			mount("/jobs", params.JobsHandler)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Problem(w, http.StatusMethodNotAllowed, "Method Not Allowed", r.Method+" is not supported on "+r.URL.Path)
	})

	return r
}

func healthHandler(pool Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(ctx); err != nil {
				httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": err.Error()})
				return
			}
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
