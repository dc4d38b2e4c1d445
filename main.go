package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/routes"
	"hotel-reservation-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Monetary fields serialize as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	db, err := config.ConnectDatabase(cfg.DSN)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	config.SeedAdmin(db, cfg.BcryptCost)
	log.Println("Database connection established and migrations applied")

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.BcryptCost, cfg.TokenTTL)
	bookingService := services.NewBookingService(db)
	guestServiceService := services.NewGuestServiceService(db)
	userService := services.NewUserService(db)
	adminService := services.NewAdminService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	bookingController := controllers.NewBookingController(bookingService)
	guestServiceController := controllers.NewGuestServiceController(guestServiceService)
	userController := controllers.NewUserController(userService)
	adminController := controllers.NewAdminController(adminService)

	router := routes.SetupRouter(
		authController,
		bookingController,
		guestServiceController,
		userController,
		adminController,
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
