package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "kamstim/internal/controller/http"
	"kamstim/internal/notifier"
	"kamstim/internal/repo/persistent"
	"kamstim/internal/settings"
	"kamstim/internal/usecase"
	"kamstim/pkg/cache"
	"kamstim/pkg/config"
	"kamstim/pkg/database"
	"kamstim/pkg/geo"
	"kamstim/pkg/jwt"
	"kamstim/pkg/logger"
	"kamstim/pkg/middleware"
	"kamstim/pkg/queue"
	"kamstim/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "kamstim/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without counters)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v (continuing without S3)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	replyRepo := persistent.NewReplyRepository(a.db)
	reactionRepo := persistent.NewReactionRepository(a.db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.s3Client, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, a.log)
	replyUseCase := usecase.NewReplyUseCase(replyRepo, postRepo, a.queueClient, a.log)
	reactionUseCase := usecase.NewReactionUseCase(reactionRepo, postRepo, a.redisClient, a.queueClient, a.log)
	containerUseCase := usecase.NewContainerUseCase(a.cfg.ContainersFile, a.cfg.ContainersS3Key, a.s3Client, a.log)

	var settingsStore settings.Store
	var notificationHandler *apphttp.NotificationHandler
	if a.redisClient != nil {
		settingsStore = settings.NewRedisStore(a.redisClient)
		notificationHandler = apphttp.NewNotificationHandler(notifier.New(a.redisClient, a.log), a.log)
	} else {
		settingsStore = settings.NewMemoryStore()
	}

	geoClient := geo.NewClient(a.cfg.NominatimBaseURL)

	// Handlers
	authHandler := apphttp.NewAuthHandler(authUseCase)
	oauthHandler := apphttp.NewOAuthHandler(authUseCase, a.cfg, a.log)
	postHandler := apphttp.NewPostHandler(postUseCase, a.log)
	replyHandler := apphttp.NewReplyHandler(replyUseCase, a.log)
	reactionHandler := apphttp.NewReactionHandler(reactionUseCase, a.log)
	containerHandler := apphttp.NewContainerHandler(containerUseCase, geoClient, a.log)
	settingsHandler := apphttp.NewSettingsHandler(settingsStore, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:post_id/reactions/count", reactionHandler.GetReactionCount)
		api.GET("/containers", containerHandler.GetContainers)
		api.GET("/geocode", containerHandler.Geocode)

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/auth/github", oauthHandler.GitHubLogin)
		api.GET("/auth/github/callback", oauthHandler.GitHubCallback)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		if a.redisClient != nil {
			protected.Use(middleware.RateLimitMiddleware(a.redisClient, 60, time.Minute))
		}
		{
			protected.GET("/me", authHandler.Me)
			protected.POST("/avatar", authHandler.UploadAvatar)
			protected.POST("/posts", postHandler.CreatePost)
			protected.POST("/posts/:post_id/reactions", reactionHandler.React)
			protected.POST("/posts/:post_id/replies", replyHandler.CreateReply)
			protected.GET("/settings", settingsHandler.GetSettings)
			protected.PUT("/settings", settingsHandler.PutSettings)
			if notificationHandler != nil {
				protected.GET("/notifications", notificationHandler.GetNotifications)
			}
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}
