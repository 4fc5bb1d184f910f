// File: booktrack/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booktrack/config"
	"booktrack/cron"
	"booktrack/database"
	bookingRepoPkg "booktrack/database/repository/booking"
	catalogRepoPkg "booktrack/database/repository/catalog"
	paymentRepoPkg "booktrack/database/repository/payment"
	reviewRepoPkg "booktrack/database/repository/review"
	userRepoPkg "booktrack/database/repository/user"
	"booktrack/handlers"
	"booktrack/middleware"
	"booktrack/routes"
	"booktrack/services/admin"
	"booktrack/services/booking"
	"booktrack/services/catalog"
	"booktrack/services/realtime"
	"booktrack/services/review"
	"booktrack/services/tasks"
	"booktrack/services/user"
	"booktrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// realtime fan-out and the reminder pipeline.
	hub := realtime.NewHub()
	reminders := tasks.NewScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer reminders.Close()
	cron.InitReminderWorker(hub)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo, Reviews: reviewRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Catalog:   catalogRepo,
		Payments:  paymentRepo,
		Events:    hub,
		Reminders: reminders,
	}
	reviewService := &review.DefaultReviewService{Repo: reviewRepo, Bookings: bookingRepo}
	adminService := &admin.DefaultAdminService{
		Users:    userRepo,
		Bookings: bookingRepo,
		Catalog:  catalogRepo,
		Cache:    utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Payment:  handlers.NewPaymentHandler(bookingService),
		Review:   handlers.NewReviewHandler(reviewService),
		Admin:    handlers.NewAdminHandler(adminService),
		Realtime: handlers.NewRealtimeHandler(hub),
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
