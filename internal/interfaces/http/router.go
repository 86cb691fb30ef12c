package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/auth"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
	"github.com/ilogush/cars-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	CarUC       *usecase.CarUseCase
	BookingUC   *usecase.BookingUseCase
	ContractUC  *usecase.ContractUseCase
	PaymentUC   *usecase.PaymentUseCase
	UserUC      *usecase.UserUseCase
	ReferenceUC *usecase.ReferenceUseCase
	DashboardUC *usecase.DashboardUseCase
	Recorder    *audit.Recorder
	UserRepo    repository.UserRepository
	Resolver    *access.Resolver
	JWTSecret   string
	RateLimit   config.RateLimitConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := RequireRole(entity.RoleAdmin, entity.RoleOwner, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público, con rate limit en login)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Recorder)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login",
		RateLimit(deps.RateLimit.LoginMax, deps.RateLimit.LoginWindow),
		FailedLoginLimit(deps.RateLimit.FailedLoginMax, deps.RateLimit.FailedLoginWindow),
		authHandler.Login,
	)

	// Rutas protegidas: token válido + scope recalculado contra la DB
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		ScopeMiddleware(deps.UserRepo, deps.Resolver),
	)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Recorder)
	companies.Post("/", adminOnly, companyHandler.Create)
	companies.Get("/", adminOnly, companyHandler.List)
	companies.Get("/:id", staff, companyHandler.GetByID)
	companies.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleOwner), companyHandler.Update)
	companies.Delete("/:id", adminOnly, companyHandler.Delete)

	// Cars (lectura abierta a clients: catálogo de renta)
	cars := protected.Group("/cars")
	carHandler := NewCarHandler(deps.CarUC, deps.Recorder)
	cars.Post("/", staff, carHandler.Create)
	cars.Get("/", carHandler.List)
	cars.Get("/:id", carHandler.GetByID)
	cars.Put("/:id", staff, carHandler.Update)
	cars.Delete("/:id", staff, carHandler.Delete)

	// Bookings
	bookings := protected.Group("/bookings")
	bookingHandler := NewBookingHandler(deps.BookingUC, deps.ContractUC, deps.Recorder)
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.Recorder)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Delete("/:id", staff, bookingHandler.Delete)
	bookings.Get("/:id/contract", bookingHandler.Contract)
	bookings.Get("/:id/payments", paymentHandler.ListByBooking)

	// Payments
	payments := protected.Group("/payments")
	payments.Post("/", staff, paymentHandler.Create)
	payments.Get("/", staff, paymentHandler.List)
	payments.Put("/:id", staff, paymentHandler.Correct)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Recorder)
	users.Post("/", staff, userHandler.Create)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Referencia (cacheado)
	referenceHandler := NewReferenceHandler(deps.ReferenceUC, deps.Recorder)
	protected.Get("/brands", referenceHandler.ListBrands)
	protected.Get("/locations", referenceHandler.ListLocations)
	protected.Post("/locations", adminOnly, referenceHandler.CreateLocation)
	protected.Get("/currencies", referenceHandler.ListCurrencies)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", staff, dashboardHandler.Get)

	// Admin (impersonación + audit log)
	admin := protected.Group("/admin", adminOnly)
	adminHandler := NewAdminHandler(deps.CompanyUC, deps.Recorder)
	admin.Post("/enter-company", adminHandler.EnterCompany)
	admin.Post("/exit-company", adminHandler.ExitCompany)
	admin.Get("/audit-logs", adminHandler.ListAuditLogs)
	admin.Delete("/audit-logs", adminHandler.ClearAuditLogs)
}
