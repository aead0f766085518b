package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"dreamydestiny/config"
	"dreamydestiny/database"
	bookingRepo "dreamydestiny/database/repository/booking"
	reviewRepo "dreamydestiny/database/repository/review"
	roomRepo "dreamydestiny/database/repository/room"
	"dreamydestiny/handlers"
	"dreamydestiny/middleware"
	"dreamydestiny/routes"
	"dreamydestiny/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	db := database.GetDatabase()
	rooms := roomRepo.NewMongoRoomRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	reviews := reviewRepo.NewMongoReviewRepo(db)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(),
		Rooms:    handlers.NewRoomHandler(rooms, utils.GetCacheClient()),
		Bookings: handlers.NewBookingHandler(bookings),
		Reviews:  handlers.NewReviewHandler(reviews),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
