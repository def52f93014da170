package app

import (
	"fmt"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError нужен, чтобы нарушение уникальности username
	// приходило как gorm.ErrDuplicatedKey
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает gin-роутер поверх подключенной БД
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	savedRepo := repositories.NewSavedJobRepository(gormDB)

	return BuildRouter(cfg, userRepo, jobRepo, savedRepo)
}

// BuildRouter собирает роутер из репозиториев.
// Вынесен отдельно, чтобы тесты могли подставить in-memory реализации.
func BuildRouter(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	savedRepo repositories.SavedJobRepository,
) *gin.Engine {
	authService := services.NewAuthService(userRepo, services.AuthConfig{
		JWTSecret:      cfg.JWT.Secret,
		TokenTTL:       time.Duration(cfg.JWT.TTLHours) * time.Hour,
		PasswordPepper: cfg.Auth.PasswordPepper,
		BcryptCost:     cfg.Auth.BcryptCost,
	})
	savedJobsService := services.NewSavedJobsService(userRepo, jobRepo, savedRepo)
	jobService := services.NewJobService(jobRepo)

	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, authService),
		JobHandler:       handlers.NewJobHandler(baseHandler, jobService),
		SavedJobsHandler: handlers.NewSavedJobsHandler(baseHandler, savedJobsService),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		gin.Recovery(),
		cors.Default(),
	)

	routes.RegisterRoutes(ginRouter, appHandlers, cfg.JWT.Secret)

	return ginRouter
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.SavedJob{},
	)
}
