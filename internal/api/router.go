package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/clubstack/inventory-system/internal/api/handler"
	"github.com/clubstack/inventory-system/internal/api/middleware"
	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/service"
	"github.com/clubstack/inventory-system/internal/infrastructure/config"
	"github.com/clubstack/inventory-system/internal/infrastructure/db/postgres"
	rediscache "github.com/clubstack/inventory-system/internal/infrastructure/db/redis"
	"github.com/clubstack/inventory-system/internal/infrastructure/http/handlers"
	"github.com/clubstack/inventory-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	itemRepo := postgres.NewInventoryRepository(db)
	borrowRepo := postgres.NewBorrowRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	cache := rediscache.NewListingCache(rdb, cfg.Redis.CacheTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	inventoryService := service.NewInventoryService(itemRepo, cache, log)
	borrowService := service.NewBorrowService(borrowRepo, itemRepo, userRepo, cache, log)
	eventService := service.NewEventService(eventRepo, log)
	scheduleService := service.NewScheduleService(scheduleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	borrowHandler := handler.NewBorrowHandler(borrowService)
	eventHandler := handler.NewEventHandler(eventService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	if cfg.RegistrationOpen {
		e.POST("/auth/register", authHandler.Register)
	} else {
		e.POST("/auth/register", authHandler.Register, auth, adminOnly)
	}
	e.POST("/auth/login", authHandler.Login)
	e.PUT("/auth/password", authHandler.ChangePassword, auth)

	// --- Inventory routes (reads public, writes admin) ---
	e.GET("/inventory", inventoryHandler.List)
	e.GET("/inventory/available", inventoryHandler.ListAvailable)
	e.GET("/inventory/categories/:category", inventoryHandler.ListByCategory)
	e.GET("/inventory/:id", inventoryHandler.Get)
	e.POST("/inventory", inventoryHandler.Create, auth, adminOnly)
	e.PATCH("/inventory/:id", inventoryHandler.Update, auth, adminOnly)
	e.DELETE("/inventory/:id", inventoryHandler.Delete, auth, adminOnly)

	// --- Borrow lifecycle routes ---
	e.POST("/borrows/user", borrowHandler.RequestUser, auth)
	e.POST("/borrows/guest", borrowHandler.RequestGuest)
	e.GET("/borrows", borrowHandler.List, auth)
	e.GET("/borrows/:id", borrowHandler.Get, auth)
	e.PUT("/borrows/:id/approve", borrowHandler.Approve, auth, adminOnly)
	e.PUT("/borrows/:id/reject", borrowHandler.Reject, auth, adminOnly)
	e.PUT("/borrows/:id/return", borrowHandler.Return, auth, adminOnly)
	e.DELETE("/borrows/:id", borrowHandler.Delete, auth, adminOnly)

	// --- Event routes ---
	e.GET("/events", eventHandler.List)
	e.GET("/events/:id", eventHandler.Get)
	e.POST("/events", eventHandler.Create, auth)
	e.PUT("/events/:id", eventHandler.Update, auth)
	e.DELETE("/events/:id", eventHandler.Delete, auth)

	// --- Opening hours routes ---
	e.GET("/opening-hours", scheduleHandler.ListOpeningHours)
	e.GET("/opening-hours/:weekday", scheduleHandler.GetOpeningHours)
	e.POST("/opening-hours", scheduleHandler.SetOpeningHours, auth)
	e.PUT("/opening-hours/:weekday", scheduleHandler.UpdateOpeningHours, auth)
	e.DELETE("/opening-hours/:weekday", scheduleHandler.DeleteOpeningHours, auth)

	// --- Calendar period routes ---
	e.GET("/calendar-periods", scheduleHandler.ListPeriods)
	e.GET("/calendar-periods/period-openings/:weekday", scheduleHandler.ListPeriodOpenings)
	e.GET("/calendar-periods/:id", scheduleHandler.GetPeriod)
	e.POST("/calendar-periods", scheduleHandler.CreatePeriod, auth, adminOnly)
	e.POST("/calendar-periods/period-openings", scheduleHandler.AddPeriodOpening, auth, adminOnly)
	e.PUT("/calendar-periods/:id", scheduleHandler.UpdatePeriod, auth, adminOnly)
	e.DELETE("/calendar-periods/:id", scheduleHandler.DeletePeriod, auth, adminOnly)

	// --- User routes ---
	e.GET("/users/me", userHandler.Me, auth)
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.GET("/users/:id", userHandler.Get, auth)
	e.DELETE("/users/:id", userHandler.Delete, auth, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
