package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/qanyare/restaurant-service/internal/api/handler"
	"github.com/qanyare/restaurant-service/internal/metrics"
	"github.com/qanyare/restaurant-service/internal/middleware"
	"github.com/qanyare/restaurant-service/internal/service"
	"github.com/qanyare/restaurant-service/internal/websockets"
)

// Options controls the optional parts of the router
type Options struct {
	// ProtectAdminRoutes puts the admin surface behind an admin token
	ProtectAdminRoutes bool
	// LoginRatePerMinute limits login attempts per client IP, 0 disables the limit
	LoginRatePerMinute int
	HealthCheck        func(context.Context) error
	Hub                *websockets.Hub
	Metrics            *metrics.Metrics
	Logger             *slog.Logger
}

// Router handles HTTP routing
type Router struct {
	mux     *http.ServeMux
	handler http.Handler
	svc     *service.Services
	opts    Options
}

// New creates a new router
func New(svc *service.Services, opts Options) *Router {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r := &Router{
		mux:  http.NewServeMux(),
		svc:  svc,
		opts: opts,
	}

	r.setupRoutes()

	// Metrics sits next to the mux so it sees the matched pattern
	var h http.Handler = r.mux
	if opts.Metrics != nil {
		h = middleware.Metrics(opts.Metrics)(h)
	}
	r.handler = middleware.RequestID(middleware.Logger(opts.Logger)(h))

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// setupRoutes sets up the routes for the router
func (r *Router) setupRoutes() {
	auth := handler.NewAuthHandler(r.svc.Auth)
	menu := handler.NewMenuHandler(r.svc.Menu)
	orders := handler.NewOrderHandler(r.svc.Order)
	reservations := handler.NewReservationHandler(r.svc.Reservation)
	reviews := handler.NewReviewHandler(r.svc.Review)
	staff := handler.NewStaffHandler(r.svc.Staff, r.svc.Table)
	analytics := handler.NewAnalyticsHandler(r.svc.Analytics, r.opts.HealthCheck)
	account := handler.NewAccountHandler(r.svc.Auth, r.svc.Order, r.svc.Reservation)

	// Public routes
	var login http.Handler = http.HandlerFunc(auth.Login)
	if r.opts.LoginRatePerMinute > 0 {
		login = middleware.NewRateLimiter(r.opts.LoginRatePerMinute).Middleware(login)
	}
	r.mux.Handle("POST /api/auth/login", login)
	r.mux.HandleFunc("POST /api/auth/register", auth.Register)

	r.mux.HandleFunc("GET /api/categories", menu.ListCategories)
	r.mux.HandleFunc("GET /api/categories/{id}", menu.GetCategory)
	r.mux.HandleFunc("GET /api/menu-items", menu.ListItems)
	r.mux.HandleFunc("GET /api/menu-items/{id}", menu.GetItem)
	r.mux.HandleFunc("POST /api/orders", orders.Create)
	r.mux.HandleFunc("POST /api/reservations", reservations.Create)
	r.mux.HandleFunc("GET /api/reviews", reviews.List)
	r.mux.HandleFunc("POST /api/reviews", reviews.Create)
	r.mux.HandleFunc("GET /api/tables", staff.ListTables)
	r.mux.HandleFunc("GET /api/tables/{id}", staff.GetTable)

	// Signed-in routes
	r.signedIn("GET /api/auth/me", account.Me)
	r.signedIn("GET /api/me/orders", account.Orders)
	r.signedIn("GET /api/me/reservations", account.Reservations)

	// Admin routes
	r.admin("POST /api/categories", menu.CreateCategory)
	r.admin("PATCH /api/categories/{id}", menu.UpdateCategory)
	r.admin("DELETE /api/categories/{id}", menu.DeleteCategory)
	r.admin("POST /api/menu-items", menu.CreateItem)
	r.admin("PATCH /api/menu-items/{id}", menu.UpdateItem)
	r.admin("DELETE /api/menu-items/{id}", menu.DeleteItem)

	r.admin("GET /api/orders", orders.List)
	r.admin("GET /api/orders/{id}", orders.Get)
	r.admin("PATCH /api/orders/{id}", orders.Update)
	r.admin("GET /api/orders/{id}/receipt", orders.Receipt)

	r.admin("GET /api/reservations", reservations.List)
	r.admin("GET /api/reservations/{id}", reservations.Get)
	r.admin("PATCH /api/reservations/{id}", reservations.Update)

	r.admin("PATCH /api/reviews/{id}", reviews.Update)
	r.admin("DELETE /api/reviews/{id}", reviews.Delete)

	r.admin("GET /api/staff", staff.ListStaff)
	r.admin("GET /api/staff/{id}", staff.GetStaff)
	r.admin("POST /api/staff", staff.CreateStaff)
	r.admin("PATCH /api/staff/{id}", staff.UpdateStaff)
	r.admin("DELETE /api/staff/{id}", staff.DeleteStaff)

	r.admin("POST /api/tables", staff.CreateTable)
	r.admin("PATCH /api/tables/{id}", staff.UpdateTable)
	r.admin("DELETE /api/tables/{id}", staff.DeleteTable)

	r.admin("GET /api/analytics/stats", analytics.Stats)

	// Infrastructure
	r.mux.HandleFunc("GET /healthz", analytics.Health)
	if r.opts.Hub != nil {
		r.mux.Handle("GET /ws", websockets.Handler(r.opts.Hub))
	}
	if r.opts.Metrics != nil {
		r.mux.Handle("GET /metrics", r.opts.Metrics.Handler())
	}
}

// signedIn registers a route that needs a valid token of any account
func (r *Router) signedIn(pattern string, h http.HandlerFunc) {
	r.mux.Handle(pattern, middleware.Auth(r.svc.Auth)(h))
}

// admin registers a route of the admin surface
func (r *Router) admin(pattern string, h http.HandlerFunc) {
	if !r.opts.ProtectAdminRoutes {
		r.mux.Handle(pattern, h)
		return
	}
	r.mux.Handle(pattern, middleware.Auth(r.svc.Auth)(middleware.RequireAdmin(h)))
}
