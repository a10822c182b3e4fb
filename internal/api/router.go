package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/dailymate/dailymate-api/internal/api/handler"
	"github.com/dailymate/dailymate-api/internal/api/middleware"
	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

// RouterConfig carries the HTTP-level settings.
type RouterConfig struct {
	Logger         zerolog.Logger
	Development    bool
	FrontendOrigin string
	Cookie         middleware.SessionCookie

	// AuthRate and AuthBurst bound login and code issuing per client IP.
	AuthRate  rate.Limit
	AuthBurst int

	// Registry receives the HTTP metrics and serves /metrics. Defaults to
	// the global prometheus registry.
	Registry *prometheus.Registry

	// Health lists the dependencies checked by /health/ready.
	Health map[string]handler.Pinger
}

// Services are the core services the handlers delegate to.
type Services struct {
	Auth         ports.AuthService
	Verification ports.VerificationService
	Provisioning ports.ProvisioningService
	Kids         ports.KidService
	Courses      ports.CourseService
	Lessons      ports.LessonService
	Tests        ports.AssessmentService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig, svc Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger, cfg.Development)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "dailymate",
		Registerer: registerer,
	}))
	e.Use(middleware.LoadSession(svc.Auth, cfg.Cookie, cfg.Logger))

	authLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      cfg.AuthRate,
			Burst:     cfg.AuthBurst,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later")
		},
	})
	session := middleware.RequireSession()
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	courseAuthors := middleware.RequireRole(domain.RoleTeacher, domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth, svc.Verification, cfg.Cookie)
	auth := e.Group("/auth")
	auth.POST("", authHandler.Login, authLimiter)
	auth.GET("/status", authHandler.Status, session)
	auth.POST("/logout", authHandler.Logout, session)
	auth.PUT("/change-password", authHandler.ChangePassword, session)
	auth.POST("/send-verification", authHandler.SendVerification, authLimiter)
	auth.POST("/verify-email", authHandler.VerifyEmail)
	auth.POST("/forgot-password", authHandler.ForgotPassword, authLimiter)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// --- Provisioning routes ---
	provisioningHandler := handler.NewProvisioningHandler(svc.Provisioning, svc.Auth)
	e.POST("/parent/create", provisioningHandler.CreateParent)
	e.POST("/kid", provisioningHandler.CreateKid)
	e.POST("/kid/create", provisioningHandler.CreateKid)
	e.POST("/teacher/create", provisioningHandler.CreateTeacher, session, adminOnly)
	e.POST("/admin/create", provisioningHandler.CreateAdmin, session, adminOnly)

	// --- Kid routes ---
	kidHandler := handler.NewKidHandler(svc.Kids)
	e.GET("/kid/parent/:parentId", kidHandler.ListByParent, session)
	e.GET("/kid/:kidId", kidHandler.Get, session)
	e.PUT("/kid/:kidId", kidHandler.Update, session)
	e.DELETE("/kid/:kidId", kidHandler.Delete, session)

	// --- Course routes ---
	courseHandler := handler.NewCourseHandler(svc.Courses)
	e.GET("/course", courseHandler.List)
	e.GET("/course/category/:category", courseHandler.ListByCategory)
	e.GET("/course/:courseId", courseHandler.Get)
	e.POST("/course", courseHandler.Create, session, courseAuthors)
	e.PUT("/course/:courseId", courseHandler.Update, session, courseAuthors)
	e.DELETE("/course/:courseId", courseHandler.Delete, session, courseAuthors)

	// --- Lesson routes ---
	lessonHandler := handler.NewLessonHandler(svc.Lessons)
	e.GET("/lesson/course/:courseId", lessonHandler.ListByCourse)
	e.GET("/lesson/:lessonId", lessonHandler.Get)
	e.POST("/lesson", lessonHandler.Create, session, courseAuthors)
	e.PUT("/lesson/:lessonId", lessonHandler.Update, session, courseAuthors)
	e.DELETE("/lesson/:lessonId", lessonHandler.Delete, session, courseAuthors)

	// --- Test routes ---
	testHandler := handler.NewAssessmentHandler(svc.Tests)
	e.GET("/test/lesson/:lessonId", testHandler.ListByLesson)
	e.GET("/test/course/:courseId", testHandler.ListByCourse)
	e.GET("/test/:testId", testHandler.Get)
	e.POST("/test", testHandler.Create, session, courseAuthors)
	e.PUT("/test/:testId", testHandler.Update, session, courseAuthors)
	e.DELETE("/test/:testId", testHandler.Delete, session, courseAuthors)

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
