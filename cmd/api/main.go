package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"ascend/internal/config"
	"ascend/internal/db"
	"ascend/internal/email"
	"ascend/internal/engine"
	apihttp "ascend/internal/http"
	"ascend/internal/repository"
	"ascend/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	assessmentRepo := repository.NewPgAssessmentRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		otpLimiter    service.RateLimiter
		submitLimiter service.RateLimiter
		tokenStore    service.RefreshTokenStore
		redisClient   *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			otpLimiter = service.NewRedisRateLimiter(redisClient, "rl:otp:", 10*time.Minute, 3)
			submitLimiter = service.NewRedisRateLimiter(redisClient, "rl:submit:", time.Hour, 10)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	if submitLimiter == nil {
		submitLimiter = service.NewMemoryRateLimiter(time.Hour, 10)
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	eng := engine.New(engine.DefaultCatalog(), engine.DefaultParams(), logger)

	userSvc := service.NewUserService(logger, userRepo, emailSender, otpLimiter)
	assessmentSvc := service.NewAssessmentService(logger, eng, assessmentRepo, userRepo, emailSender, submitLimiter)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, assessmentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
