package app

import (
	"fmt"
	"time"

	"taskflow_backend/database"
	"taskflow_backend/internal/auth"
	"taskflow_backend/internal/config"
	"taskflow_backend/internal/email"
	"taskflow_backend/internal/handlers"
	"taskflow_backend/internal/logger"
	"taskflow_backend/internal/middleware"
	"taskflow_backend/internal/repositories"
	"taskflow_backend/internal/routes"
	"taskflow_backend/internal/services"
	"taskflow_backend/internal/validator"
	"taskflow_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessTTL)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTL)*time.Minute,
	)

	userRepo := repositories.NewUserRepository(gormDB)
	serviceContainer := initializeServices(cfg, gormDB, tokens, userRepo)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens, userRepo)

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, outgoing mail is logged instead of sent")
		emailProvider = &LogEmailProvider{}
	} else {
		emailProvider = email.NewGomailSender(cfg)
	}

	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	workspaceRepo := repositories.NewWorkspaceRepository(gormDB)
	boardRepo := repositories.NewBoardRepository(gormDB)
	columnRepo := repositories.NewColumnRepository(gormDB)
	cardRepo := repositories.NewCardRepository(gormDB)
	commentRepo := repositories.NewCommentRepository(gormDB)

	authService := services.NewAuthService(userRepo, refreshTokenRepo, tokens, emailProvider, cfg.ClientURL)
	workspaceService := services.NewWorkspaceService(workspaceRepo, boardRepo, columnRepo, cardRepo)
	boardService := services.NewBoardService(workspaceRepo, boardRepo, columnRepo, cardRepo)
	columnService := services.NewColumnService(workspaceRepo, boardRepo, columnRepo, cardRepo)
	cardService := services.NewCardService(workspaceRepo, boardRepo, columnRepo, cardRepo, commentRepo)

	return &services.ServiceContainer{
		AuthService:      authService,
		WorkspaceService: workspaceService,
		BoardService:     boardService,
		ColumnService:    columnService,
		CardService:      cardService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		WorkspaceHandler: handlers.NewWorkspaceHandler(baseHandler, services.WorkspaceService),
		BoardHandler:     handlers.NewBoardHandler(baseHandler, services.BoardService),
		ColumnHandler:    handlers.NewColumnHandler(baseHandler, services.ColumnService),
		CardHandler:      handlers.NewCardHandler(baseHandler, services.CardService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		apperrors.SetDebug(true)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.ClientURL))
	return router
}
