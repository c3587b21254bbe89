package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servicehub/config"
	"servicehub/cron"
	"servicehub/database"
	adminRepoPkg "servicehub/database/repository/admin"
	cartRepoPkg "servicehub/database/repository/cart"
	orderRepoPkg "servicehub/database/repository/order"
	paymentRepoPkg "servicehub/database/repository/payment"
	providerRepoPkg "servicehub/database/repository/provider"
	userRepoPkg "servicehub/database/repository/user"
	"servicehub/handlers"
	"servicehub/middleware"
	"servicehub/routes"
	"servicehub/services/auth"
	cartSvc "servicehub/services/cart"
	orderSvc "servicehub/services/order"
	paymentSvc "servicehub/services/payment"
	"servicehub/services/relay"
	"servicehub/services/tasks"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	cartRepo := cartRepoPkg.NewMongoCartRepo()

	// Relay hub; all order events fan out to every connected console.
	hub := relay.NewHub(logger)
	go hub.Run()
	cron.InitReminderWorker(hub)

	// services.
	orderService := &orderSvc.DefaultOrderService{
		Users:     userRepo,
		Providers: providerRepo,
		Orders:    orderRepo,
		Admins:    adminRepo,
		Relay:     hub,
		Reminders: tasks.NewScheduler(),
	}
	paymentService := &paymentSvc.DefaultPaymentService{
		Payments:  paymentRepo,
		Users:     userRepo,
		Providers: providerRepo,
		Orders:    orderRepo,
		Admins:    adminRepo,
		Processor: paymentSvc.NewPayPalClient(),
		Relay:     hub,
	}
	authService := &auth.DefaultAuthService{
		Users:     userRepo,
		Providers: providerRepo,
		Admins:    adminRepo,
		Cache:     utils.GetAuthCacheClient(),
	}
	cartService := &cartSvc.DefaultCartService{Carts: cartRepo}

	handlers.OrderService = orderService
	handlers.PaymentService = paymentService
	handlers.AuthService = authService
	handlers.CartService = cartService
	handlers.ProviderRepo = providerRepo
	handlers.UserRepo = userRepo

	routes.RegisterRoutes(router, hub)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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

	logger.Sugar().Info("main: server stopped gracefully")
}
