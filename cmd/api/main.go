package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/ilogush/cars-api/docs"
	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/auth"
	"github.com/ilogush/cars-api/internal/application/usecase"
	infrapdf "github.com/ilogush/cars-api/internal/infrastructure/pdf"
	"github.com/ilogush/cars-api/internal/infrastructure/postgres"
	httpRouter "github.com/ilogush/cars-api/internal/interfaces/http"
	"github.com/ilogush/cars-api/pkg/config"
	"github.com/ilogush/cars-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	carRepo := postgres.NewCarRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	managerRepo := postgres.NewManagerProfileRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := access.NewResolver(companyRepo, managerRepo)
	recorder := audit.NewRecorder(auditRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo)
	carUC := usecase.NewCarUseCase(carRepo)
	bookingUC := usecase.NewBookingUseCase(txRunner, bookingRepo, carRepo, userRepo)
	contractUC := usecase.NewContractUseCase(
		bookingRepo, carRepo, companyRepo, userRepo, paymentRepo,
		infrapdf.NewMarotoContractGenerator(),
	)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, bookingRepo)
	userUC := usecase.NewUserUseCase(userRepo, managerRepo, resolver)
	referenceUC := usecase.NewReferenceUseCase(catalogRepo, locationRepo, cfg.Cache.ReferenceTTL, cfg.Cache.CleanupInterval)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cars API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		CarUC:       carUC,
		BookingUC:   bookingUC,
		ContractUC:  contractUC,
		PaymentUC:   paymentUC,
		UserUC:      userUC,
		ReferenceUC: referenceUC,
		DashboardUC: dashboardUC,
		Recorder:    recorder,
		UserRepo:    userRepo,
		Resolver:    resolver,
		JWTSecret:   cfg.JWT.Secret,
		RateLimit:   cfg.RateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
