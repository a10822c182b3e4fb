// @title           DailyMate API
// @version         1.0
// @description     Accounts, role profiles, sessions, courses, lessons and tests for the DailyMate learning platform.
// @BasePath        /
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        dailymate.sid
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	_ "github.com/dailymate/dailymate-api/docs"
	"github.com/dailymate/dailymate-api/internal/api"
	"github.com/dailymate/dailymate-api/internal/api/handler"
	"github.com/dailymate/dailymate-api/internal/api/middleware"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/core/service"
	"github.com/dailymate/dailymate-api/internal/infrastructure/db/mongo"
	"github.com/dailymate/dailymate-api/internal/infrastructure/db/redis"
	"github.com/dailymate/dailymate-api/internal/infrastructure/hashing"
	"github.com/dailymate/dailymate-api/internal/infrastructure/mail"
	"github.com/dailymate/dailymate-api/internal/pkg/config"
	"github.com/dailymate/dailymate-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "dailymate-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	accounts := mongo.NewAccountRepository(db)
	profiles := mongo.NewProfileRepository(db)
	codes := mongo.NewVerificationRepository(db)
	courses := mongo.NewCourseRepository(db)
	lessons := mongo.NewLessonRepository(db)
	tests := mongo.NewAssessmentRepository(db)
	if err := mongo.EnsureIndexes(ctx, accounts, profiles, codes, courses, lessons, tests); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Stopped only after the server has drained.
	poolCtx, stopPool := context.WithCancel(context.Background())
	defer stopPool()
	hasher := hashing.NewPool(cfg.Hash.Workers, cfg.Hash.Cost, logger.Component("hashing"))
	hasher.Start(poolCtx)

	// --- Services ---
	authService := service.NewAuthService(accounts, profiles, redis.NewSessionStore(rdb), hasher, cfg.Session.TTL, logger.Component("auth"))
	services := api.Services{
		Auth:         authService,
		Verification: service.NewVerificationService(accounts, codes, newMailer(cfg, logger.Component("mail")), hasher, logger.Component("verification")),
		Provisioning: service.NewProvisioningService(accounts, profiles, hasher, mongo.NewTransactor(mongoClient, cfg.Mongo.Transactions), logger.Component("provisioning")),
		Kids:         service.NewKidService(accounts, profiles, logger.Component("kids")),
		Courses:      service.NewCourseService(courses, profiles, logger.Component("courses")),
		Lessons:      service.NewLessonService(lessons, tests, courses, profiles, logger.Component("lessons")),
		Tests:        service.NewAssessmentService(tests, lessons, courses, profiles, logger.Component("tests")),
	}

	e := api.NewRouter(api.RouterConfig{
		Logger:         log,
		Development:    !cfg.IsProduction(),
		FrontendOrigin: cfg.FrontendOrigin,
		Cookie: middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		AuthRate:  rate.Limit(cfg.RateLimit.Rate),
		AuthBurst: cfg.RateLimit.Burst,
		Health: map[string]handler.Pinger{
			"mongodb": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis":   handler.PingFunc(redis.Ping(rdb)),
		},
	}, services)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("api server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server run failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down api server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	stopPool()
}

func newMailer(cfg *config.Config, log zerolog.Logger) ports.Mailer {
	switch cfg.Mail.Provider {
	case "smtp":
		return mail.NewSMTPMailer(mail.SMTPConfig{
			Host: cfg.Mail.SMTPHost,
			Port: cfg.Mail.SMTPPort,
			User: cfg.Mail.SMTPUser,
			Pass: cfg.Mail.SMTPPass,
			From: cfg.Mail.From,
		}, log)
	case "sendgrid":
		return mail.NewSendgridMailer(cfg.Mail.SendgridAPIKey, cfg.Mail.From, log)
	default:
		log.Warn().Msg("MAIL_PROVIDER=log: verification codes are written to the log")
		return mail.NewLogMailer(log)
	}
}
