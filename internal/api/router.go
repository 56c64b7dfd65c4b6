package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/api/handler"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/api/middleware"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are built
// at the composition root so the activity feed can be wired to the
// repositories before the first request is served.
type Dependencies struct {
	Appointments ports.AppointmentService
	Clients      ports.ClientService
	Dashboard    ports.DashboardService
	Activity     ports.ActivityService
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("allsync"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Handlers ---
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	clientHandler := handler.NewClientHandler(deps.Clients)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	activityHandler := handler.NewActivityHandler(deps.Activity)
	capabilityHandler := handler.NewCapabilityHandler()
	healthHandler := handler.NewHealthHandler()

	// --- Probes and metrics (no role context required) ---
	e.GET("/health", healthHandler.Live)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	v1 := e.Group("/v1", middleware.RoleContext())

	v1.GET("/capabilities", capabilityHandler.Get)
	v1.GET("/dashboard/summary", dashboardHandler.Summary)
	v1.GET("/activity", activityHandler.Recent)

	v1.POST("/appointments", appointmentHandler.Create)
	v1.GET("/appointments", appointmentHandler.List)
	v1.PATCH("/appointments/:id/status", appointmentHandler.Transition)

	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients", clientHandler.Search)
	v1.PATCH("/clients/:id", clientHandler.Update)
	v1.DELETE("/clients/:id", clientHandler.Delete)

	return e
}
