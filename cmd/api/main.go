package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tnmai/schoolhub-api/docs" // Swagger docs
	"github.com/tnmai/schoolhub-api/internal/config"
	"github.com/tnmai/schoolhub-api/internal/database"
	"github.com/tnmai/schoolhub-api/internal/handlers"
	"github.com/tnmai/schoolhub-api/internal/jobs"
	"github.com/tnmai/schoolhub-api/internal/metrics"
	"github.com/tnmai/schoolhub-api/internal/middleware"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/services"
	"github.com/tnmai/schoolhub-api/internal/storage"
	"github.com/tnmai/schoolhub-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title SchoolHub API
// @version 1.0
// @description REST API for SchoolHub School Management System

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("Database migrations applied")

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Register Prometheus collectors
	metrics.Init()

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, store, cfg)

	// Schedule recurring jobs
	scheduleJobs(worker, repos, svcs)

	// Initialize handlers
	h := handlers.NewHandlers(svcs, store, worker)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			// Admin-only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				// User management
				admin.GET("/users", h.User.Index)
				admin.POST("/users", h.User.Create)
				admin.DELETE("/users/:user_id", h.User.Delete)
				admin.POST("/users/:user_id/restore", h.User.Restore)
				admin.DELETE("/users/:user_id/purge", h.User.Purge)

				// Students, teachers, classes, subjects (mutations)
				admin.POST("/students", h.Student.Create)
				admin.PUT("/students/:id", h.Student.Update)
				admin.DELETE("/students/:id", h.Student.Delete)
				admin.POST("/students/:id/transition", h.Student.Transition)
				admin.POST("/students/:id/avatar", h.Student.UploadAvatar)

				admin.POST("/teachers", h.Teacher.Create)
				admin.PUT("/teachers/:id", h.Teacher.Update)
				admin.DELETE("/teachers/:id", h.Teacher.Delete)
				admin.POST("/teachers/:id/avatar", h.Teacher.UploadAvatar)

				admin.POST("/classes", h.Class.Create)
				admin.PUT("/classes/:id", h.Class.Update)
				admin.DELETE("/classes/:id", h.Class.Delete)

				admin.POST("/subjects", h.Subject.Create)
				admin.PUT("/subjects/:id", h.Subject.Update)
				admin.DELETE("/subjects/:id", h.Subject.Delete)

				// Teaching assignments
				admin.POST("/assignments", h.Assignment.Create)
				admin.PUT("/assignments/:id", h.Assignment.Update)
				admin.DELETE("/assignments/:id", h.Assignment.Delete)

				// Audit trail
				admin.GET("/audit_logs", h.Audit.Index)
				admin.GET("/audit_logs/:table_name/:record_id", h.Audit.History)

				// Login history administration
				admin.GET("/login_history", h.LoginHistory.Index)
				admin.GET("/login_history/export", h.LoginHistory.Export)
				admin.DELETE("/login_history/users/:user_id", h.LoginHistory.DeleteByUser)

				// Background jobs
				admin.GET("/jobs/status", h.Job.Status)
			}

			// Admin + teacher routes (read access and grading)
			staff := protected.Group("")
			staff.Use(middleware.RequireRole(models.RoleAdmin, models.RoleTeacher))
			{
				staff.GET("/students", h.Student.Index)
				staff.GET("/students/:id", h.Student.Show)
				staff.GET("/students/:id/scores", h.Student.Scores)
				staff.GET("/students/:id/report_card", h.Student.ReportCard)

				staff.GET("/teachers", h.Teacher.Index)
				staff.GET("/teachers/:id", h.Teacher.Show)
				staff.GET("/teachers/:id/assignments", h.Teacher.Assignments)

				staff.GET("/classes", h.Class.Index)
				staff.GET("/classes/:id", h.Class.Show)
				staff.GET("/classes/:id/students", h.Class.Students)
				staff.GET("/classes/:id/score_sheet", h.Class.ScoreSheet)

				staff.GET("/subjects", h.Subject.Index)
				staff.GET("/subjects/:id", h.Subject.Show)

				staff.GET("/assignments", h.Assignment.Index)

				// Scores: the handler enforces the assignment check for teachers
				staff.GET("/scores", h.Score.Index)
				staff.POST("/scores", h.Score.Create)
				staff.PUT("/scores/:id", h.Score.Update)
				staff.DELETE("/scores/:id", h.Score.Delete)
			}

			// Admin or owner (personal data access)
			userData := protected.Group("/users/:user_id")
			userData.Use(middleware.RequireAdminOrOwner())
			{
				userData.GET("", h.User.Show)
				userData.PUT("", h.User.Update)
				userData.GET("/login_history", h.User.LoginHistory)
				userData.POST("/avatar", h.User.UploadAvatar)
			}

			// User can change their own password
			protected.PATCH("/users/:user_id/change_password", h.User.ChangePassword)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, repos *repository.Repositories, svcs *services.Services) {
	// Purge expired refresh tokens every hour
	worker.ScheduleEvery(1*time.Hour, func(ctx context.Context) error {
		deleted, err := repos.RefreshToken.DeleteExpired(ctx)
		if err != nil {
			return err
		}
		if deleted > 0 {
			logger.Info("[Job] Purged expired refresh tokens", "count", deleted)
		}
		return nil
	})

	// Reconcile class student counts every 6 hours
	worker.ScheduleEvery(6*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Refreshing class student counts...")
		return svcs.Class.RefreshStudentCounts(ctx)
	})

	logger.Info("Scheduled recurring jobs")
}
