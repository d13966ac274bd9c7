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
	"go.uber.org/zap"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/models"
	"hotel-reservation/routes"
	"hotel-reservation/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	logger.Info("database connection established")

	var cache services.AvailabilityCache = services.NopAvailabilityCache{}
	rdb, err := config.ConnectRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, availability cache disabled", zap.Error(err))
	} else if rdb != nil {
		defer rdb.Close()
		cache = services.NewRedisAvailabilityCache(rdb, cfg.AvailabilityCacheTTL, logger.Named("cache"))
	}

	// Persistence facades
	roomStore := services.NewGormFacade[models.Room](db)
	reservationStore := services.NewGormFacade[models.Reservation](db)

	// Services
	roomService := services.NewRoomService(roomStore, cache, logger)
	reservationService := services.NewReservationService(reservationStore, roomStore, cache, logger)

	// Controllers
	roomController := controllers.NewRoomController(roomService, logger)
	reservationController := controllers.NewReservationController(reservationService, logger)

	router := routes.SetupRouter(roomController, reservationController, cfg.CORSOrigins, logger)

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
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
