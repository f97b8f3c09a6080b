package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"rental-backend/internal/auth"
	"rental-backend/internal/cache"
	"rental-backend/internal/config"
	"rental-backend/internal/database"
	"rental-backend/internal/db"
	"rental-backend/internal/handlers"
	"rental-backend/internal/health"
	h "rental-backend/internal/http"
	"rental-backend/internal/middleware"
	"rental-backend/internal/repositories"
	"rental-backend/internal/services"
	"rental-backend/internal/ws"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// Redis is optional: a failed connection logs and the cache layer
	// degrades to pass-through.
	cacheClient, err := cache.Connect(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("[Redis] unavailable, running without cache: %v", err)
	} else {
		defer cacheClient.Close()
	}

	// Repositories
	carRepo := repositories.NewCarRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	rentalRepo := repositories.NewRentalRepository(pool)
	historyRepo := repositories.NewTechnicalHistoryRepository(pool)
	userRepo := repositories.NewUserRepository(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	userService := services.NewUserService(userRepo, jwtManager)
	carService := services.NewCarService(carRepo, rentalRepo, historyRepo, cacheClient)
	customerService := services.NewCustomerService(customerRepo, rentalRepo)
	rentalService := services.NewRentalService(rentalRepo, carRepo, customerRepo, cacheClient)
	dashboardService := services.NewDashboardService(carRepo, rentalRepo, cacheClient)
	documentService := services.NewDocumentService(carRepo, customerRepo, rentalRepo, historyRepo, cfg.Server.CompanyName)

	// Live status feed
	hub := ws.NewHub()
	go hub.Run()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	carHandler := handlers.NewCarHandler(carService, hub)
	customerHandler := handlers.NewCustomerHandler(customerService)
	rentalHandler := handlers.NewRentalHandler(rentalService, hub)
	documentHandler := handlers.NewDocumentHandler(documentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthChecker := health.NewHealthChecker(pool, cacheClient)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		userHandler,
		carHandler,
		customerHandler,
		rentalHandler,
		documentHandler,
		dashboardHandler,
		healthHandler,
		authMiddleware,
		hub,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
