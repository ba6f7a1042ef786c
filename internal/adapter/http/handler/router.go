package handler

import (
	"github.com/cedbrasil/enrolld/internal/adapter/http/middleware"
	"github.com/cedbrasil/enrolld/internal/core/ports"
	"github.com/cedbrasil/enrolld/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	EnrollmentSvc  ports.EnrollmentService
	Reconciler     ports.WebhookReconciler
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	Catalog        ports.CourseCatalog
	Metrics        *service.MetricsService // nil = metrics endpoint disabled
	WebhookSecret  string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	enrollmentHandler := NewEnrollmentHandler(deps.EnrollmentSvc, deps.Catalog)

	// Checkout return page (public)
	r.GET("/pagamento-status", enrollmentHandler.PaymentStatus)

	// Payment processor notifications (signature-authenticated)
	webhookHandler := NewWebhookHandler(deps.Reconciler, deps.Logger)
	r.POST("/webhook/mp", middleware.WebhookSignature(deps.WebhookSecret, deps.Logger), webhookHandler.Handle)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	v1.POST("/matricula", enrollmentHandler.Submit)
	v1.GET("/cursos", enrollmentHandler.ListCourses)

	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/login", authHandler.Login)

	// --- JWT-authenticated routes (operator API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	operatorHandler := NewOperatorHandler(deps.EnrollmentSvc)
	intents := v1.Group("/matriculas", jwtAuth)
	{
		intents.GET("", operatorHandler.List)
		intents.GET("/:id", operatorHandler.Get)
		intents.POST("/:id/retry", operatorHandler.Retry)
	}

	return r
}
