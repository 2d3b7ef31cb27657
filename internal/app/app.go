package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"talenthub_backend/database"
	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/config"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/handlers"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/routes"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/storage"
	"talenthub_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, services and handlers into a ready gin engine.
// Split out from Run so tests can build the full router against their own DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	emailProvider := initializeEmailProvider(cfg)

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	formationRepo := repositories.NewFormationRepository()
	paymentRepo := repositories.NewPaymentRepository()
	capsuleRepo := repositories.NewCapsuleRepository()
	testRepo := repositories.NewTestRepository()
	interviewRepo := repositories.NewInterviewRepository()
	jobOfferRepo := repositories.NewJobOfferRepository()
	workshopRepo := repositories.NewWorkshopRepository()
	notificationRepo := repositories.NewNotificationRepository()

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, refreshTokenRepo, emailProvider),
		UserService:         services.NewUserService(userRepo, refreshTokenRepo),
		FormationService:    services.NewFormationService(formationRepo, paymentRepo, userRepo),
		CapsuleService:      services.NewCapsuleService(capsuleRepo, userRepo),
		TestService:         services.NewTestService(testRepo, userRepo),
		InterviewService:    services.NewInterviewService(interviewRepo, notificationRepo),
		JobOfferService:     services.NewJobOfferService(jobOfferRepo, userRepo, notificationRepo, emailProvider),
		WorkshopService:     services.NewWorkshopService(workshopRepo),
		NotificationService: services.NewNotificationService(notificationRepo, userRepo),
		SearchService:       services.NewSearchService(userRepo, formationRepo, capsuleRepo, jobOfferRepo),
		EmailProvider:       emailProvider,
		Storage:             storageInstance,
	}
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, outgoing email is disabled")
		return email.NoopProvider{}
	}

	templateManager := email.NewTemplateManager()
	if err := templateManager.RegisterDefaults(); err != nil {
		logger.Fatal("Failed to register email templates", "error", err)
	}
	if cfg.Email.TemplatesDir != "" {
		if err := templateManager.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("Failed to load email templates dir, using defaults", "dir", cfg.Email.TemplatesDir, "error", err)
		}
	}

	provider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	}, templateManager)

	logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	return provider
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.UserService),
		FormationHandler:    handlers.NewFormationHandler(baseHandler, container.FormationService),
		CapsuleHandler:      handlers.NewCapsuleHandler(baseHandler, container.CapsuleService),
		TestHandler:         handlers.NewTestHandler(baseHandler, container.TestService),
		InterviewHandler:    handlers.NewInterviewHandler(baseHandler, container.InterviewService),
		JobOfferHandler:     handlers.NewJobOfferHandler(baseHandler, container.JobOfferService),
		WorkshopHandler:     handlers.NewWorkshopHandler(baseHandler, container.WorkshopService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
		SearchHandler:       handlers.NewSearchHandler(baseHandler, container.SearchService),
		FileHandler:         handlers.NewFileHandler(baseHandler, container.Storage, container.UserService, container.FormationService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Name:         "Administrator",
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
