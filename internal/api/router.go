package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusworks/tasktrack/internal/api/handler"
	"github.com/campusworks/tasktrack/internal/api/middleware"
	"github.com/campusworks/tasktrack/internal/core/domain"
	"github.com/campusworks/tasktrack/internal/core/service"
	"github.com/campusworks/tasktrack/internal/core/token"
	mongodb "github.com/campusworks/tasktrack/internal/infrastructure/db/mongo"
	redisdb "github.com/campusworks/tasktrack/internal/infrastructure/db/redis"
)

// Options carries the process configuration the router needs.
type Options struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tasktrack"))

	// --- Dependencies ---
	codec := token.NewCodec(opts.JWTSecret, opts.TokenTTL)
	studentRepo := mongodb.NewStudentRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	taskCache := redisdb.NewTaskCache(rdb, log)

	authService := service.NewAuthService(studentRepo, codec, service.AdminCredential{
		Email:    opts.AdminEmail,
		Password: opts.AdminPassword,
	}, log)
	taskService := service.NewTaskService(taskRepo, studentRepo, taskCache, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(authService, taskService)
	taskHandler := handler.NewTaskHandler(taskService)

	authGuard := middleware.Auth(codec, log)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	studentOnly := middleware.RequireRole(domain.RoleStudent)

	// --- Admin routes ---
	admin := e.Group("/admin")
	admin.POST("/login", authHandler.AdminLogin)
	admin.POST("/students/add", adminHandler.AddStudent, authGuard, adminOnly)
	admin.POST("/tasks/assign", adminHandler.AssignTask, authGuard, adminOnly)

	// --- Student routes ---
	student := e.Group("/student")
	student.POST("/login", authHandler.StudentLogin)
	student.GET("/tasks", taskHandler.List, authGuard, studentOnly)
	student.PUT("/tasks/:taskId/updateStatus", taskHandler.UpdateStatus, authGuard, studentOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
