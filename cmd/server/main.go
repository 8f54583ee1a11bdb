package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"pg-backend/internal/auth"
	"pg-backend/internal/cache"
	"pg-backend/internal/config"
	"pg-backend/internal/database"
	"pg-backend/internal/db"
	"pg-backend/internal/handlers"
	"pg-backend/internal/health"
	h "pg-backend/internal/http"
	"pg-backend/internal/middleware"
	"pg-backend/internal/monitoring"
	"pg-backend/internal/repositories"
	"pg-backend/internal/services"
	"pg-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; every cache accessor degrades to a miss
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run embedded migrations, including the idempotent room seed
	log.Println("Running database migrations...")
	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Monitoring dashboard runs on its own port
	go monitoring.NewMonitoringServer(pool, cfg.Monitoring.Port).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	roomRepo := repositories.NewRoomRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	complaintRepo := repositories.NewComplaintRepository(pool)
	rentPaymentRepo := repositories.NewRentPaymentRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, tenantRepo, jwtManager)
	roomService := services.NewRoomService(roomRepo)
	tenantService := services.NewTenantService(tenantRepo, roomRepo)
	complaintService := services.NewComplaintService(complaintRepo, tenantRepo)
	rentPaymentService := services.NewRentPaymentService(rentPaymentRepo, tenantRepo)
	receiptService := services.NewReceiptService(rentPaymentRepo, tenantRepo)
	backupService := services.NewBackupService(pool, cfg)

	// Seed the bootstrap admin account (idempotent)
	if err := userService.EnsureAdmin(ctx, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	backupService.Start()
	defer backupService.Stop()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	roomHandler := handlers.NewRoomHandler(roomService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	rentPaymentHandler := handlers.NewRentPaymentHandler(rentPaymentService, receiptService)
	reportHandler := handlers.NewReportHandler(rentPaymentService, receiptService)
	backupHandler := handlers.NewBackupHandler(backupService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		userHandler,
		roomHandler,
		tenantHandler,
		complaintHandler,
		rentPaymentHandler,
		reportHandler,
		backupHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
