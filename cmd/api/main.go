package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/handler"
	"github.com/FSDTeam-SAA/loadboard/internal/adapter/logger"
	"github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres"
	redisadapter "github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/redis"
	"github.com/FSDTeam-SAA/loadboard/internal/adapter/websocket"
	"github.com/FSDTeam-SAA/loadboard/internal/config"
	"github.com/FSDTeam-SAA/loadboard/internal/core/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, _ := logger.New(cfg.Env)
	defer appLogger.Sync()

	if err := postgres.Migrate(cfg.DBUrl); err != nil {
		appLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	dbConfig, err := pgxpool.ParseConfig(cfg.DBUrl)
	if err != nil {
		appLogger.Fatal("unable to parse db config", zap.Error(err))
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		appLogger.Fatal("unable to create db pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		appLogger.Fatal("cannot connect to db", zap.Error(err))
	}
	appLogger.Info("connected to database via pgxpool")

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		appLogger.Fatal("unable to parse redis url", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	defaultCompanyID, err := uuid.Parse(cfg.DefaultCompanyID)
	if err != nil {
		appLogger.Fatal("DEFAULT_COMPANY_ID must be a valid uuid", zap.Error(err))
	}

	store := postgres.NewStore(pool)
	publisher := redisadapter.NewPublisher(redisClient)

	authSvc := service.NewAuthService(cfg.JWTSecret)
	notificationSvc := service.NewNotificationService(store, publisher, appLogger)
	loadSvc := service.NewLoadService(store, defaultCompanyID, notificationSvc, appLogger)
	fleetSvc := service.NewFleetService(store, authSvc, cfg.DefaultMemberPassword, appLogger)

	hub := websocket.NewHub(notificationSvc)
	go hub.Run()

	subscriberCtx, stopSubscriber := context.WithCancel(context.Background())
	defer stopSubscriber()
	subscriber := redisadapter.NewSubscriber(redisClient, hub, appLogger)
	go subscriber.Run(subscriberCtx)

	authHandler := handler.NewAuthHandler(authSvc, store)
	loadHandler := handler.NewLoadHandler(loadSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	companyHandler := handler.NewCompanyHandler(fleetSvc)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "UP", "env": cfg.Env})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("", handler.AuthMiddleware(authSvc))
		{
			authed.POST("/loads", loadHandler.CreateLoad)
			authed.GET("/loads", loadHandler.ListLoads)
			authed.GET("/loads/:loadId", loadHandler.GetLoad)
			authed.PATCH("/loads/:loadId/update", loadHandler.UpdateLoad)
			authed.DELETE("/loads/:loadId/delete", loadHandler.DeleteLoad)
			authed.PATCH("/loads/:loadId/ask-price", loadHandler.AskPrice)
			authed.PATCH("/loads/:loadId/price-action", loadHandler.PriceAction)
			authed.PATCH("/loads/:loadId/assign-driver", loadHandler.AssignDriver)
			authed.PATCH("/loads/:loadId/status", loadHandler.UpdateStatus)

			authed.GET("/notifications", notificationHandler.ListNotifications)
			authed.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			// gin cannot mix a literal with the :id wildcard in the same
			// segment, so mark-all lives on the collection itself.
			authed.PATCH("/notifications", notificationHandler.MarkAllRead)

			authed.POST("/companies", companyHandler.CreateCompany)
			authed.POST("/companies/drivers", companyHandler.CreateDriver)
			authed.GET("/companies/drivers", companyHandler.ListDrivers)
			authed.POST("/companies/dispatchers", companyHandler.CreateDispatcher)
			authed.GET("/companies/dispatchers", companyHandler.ListDispatchers)

			authed.GET("/ws", handler.WSHandler(hub))
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("listen: %s\n", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	stopSubscriber()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("server forced to shutdown:", zap.Error(err))
	}

	appLogger.Info("server exiting")
}
