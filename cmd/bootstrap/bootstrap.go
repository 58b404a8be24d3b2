package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careconnect-backend/config"
	"careconnect-backend/internal/chat"
	deliveryHttp "careconnect-backend/internal/delivery/http"
	"careconnect-backend/internal/delivery/http/handler"
	"careconnect-backend/internal/delivery/http/middleware"
	"careconnect-backend/internal/infrastructure/cache"
	"careconnect-backend/internal/infrastructure/database"
	"careconnect-backend/internal/repository"
	"careconnect-backend/internal/service"
	"careconnect-backend/internal/usecase"
	"careconnect-backend/pkg/jwt"
	"careconnect-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Run migrations
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Seed baseline staff (dev/demo environments)
	if cfg.App.SeedOnStartup {
		if err := database.Seed(db); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	nurseRepo := repository.NewNurseRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	visitRepo := repository.NewVisitRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	emergencyContactRepo := repository.NewEmergencyContactRepository()
	emergencyRequestRepo := repository.NewEmergencyRequestRepository()
	experienceRepo := repository.NewExperienceRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	referralRepo := repository.NewReferralRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize chat assistant. Without an API key the assistant runs
	// in rule-based fallback mode.
	var chatClient chat.Client
	if cfg.Chat.APIKey != "" {
		chatClient = chat.NewOpenAIClient(cfg.Chat)
	} else {
		logrus.Warn("OPENAI_API_KEY not set, chat assistant running in fallback mode")
	}
	conversationStore := chat.NewRedisConversationStore(redisClient, cfg.Chat.HistoryCap)
	assistant := chat.NewAssistant(chatClient, conversationStore, log)
	chatLimiter := service.NewChatLimiter(redisClient, cfg.Chat.RateLimit, cfg.Chat.RateWindow)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorRepo, nurseRepo, jwtService)
	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, doctorRepo, emergencyContactRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(db, log, medicalRecordRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, doctorRepo, availabilityRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, visitRepo, doctorRepo)
	visitUsecase := usecase.NewVisitUsecase(db, log, visitRepo, appointmentRepo)
	emergencyUsecase := usecase.NewEmergencyUsecase(db, log, emergencyRequestRepo, nurseRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, userRepo, appointmentRepo, experienceRepo, prescriptionRepo, referralRepo)
	chatUsecase := usecase.NewChatUsecase(db, log, assistant, chatLimiter, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(availabilityUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, visitUsecase, customValidator)
	emergencyHandler := handler.NewEmergencyHandler(emergencyUsecase, customValidator)
	chatHandler := handler.NewChatHandler(chatUsecase, customValidator)
	dashboardHandler := handler.NewDoctorDashboardHandler(doctorUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		medicalRecordHandler,
		doctorHandler,
		appointmentHandler,
		emergencyHandler,
		chatHandler,
		dashboardHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
