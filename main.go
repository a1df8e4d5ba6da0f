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

	"rental-backend/config"
	"rental-backend/controllers"
	"rental-backend/repository"
	"rental-backend/routes"
	"rental-backend/services"
	"rental-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	settings := config.Load()
	if settings.CurrencySymbol != "" {
		utils.CurrencySymbol = settings.CurrencySymbol
	}

	var store repository.Store
	seed := settings.SeedDemoData
	switch settings.StoreDriver {
	case config.StoreMemory:
		store = repository.NewMemoryStore()
		log.Println("✅ Using in-memory store; data is lost on restart.")
	default:
		if err := config.ConnectDatabase(); err != nil {
			log.Fatalf("❌ Database connect failed: %v", err)
		}
		if config.DB == nil {
			log.Fatal("❌ config.DB is nil after ConnectDatabase()")
		}
		log.Println("✅ Database connection established and migrations applied.")
		store = repository.NewGormStore(config.DB)
		seed = seed && !config.HasProperties()
	}

	notifier := services.NewEmailNotifier(config.NewCircuitBreaker(config.NotifierBreaker))

	// Initialize services
	propertyService := services.NewPropertyService(store)
	roomService := services.NewRoomService(store, notifier)
	bookingService := services.NewBookingService(store, notifier, settings.Location)

	if seed {
		if err := config.SeedDemoData(context.Background(), propertyService, roomService); err != nil {
			log.Printf("⚠️  demo data seeding failed: %v", err)
		}
	}

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService)
	roomController := controllers.NewRoomController(roomService)
	propertyController := controllers.NewPropertyController(propertyService)

	router := routes.SetupRouter(settings.CorsOrigins, bookingController, roomController, propertyController)

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
