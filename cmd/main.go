package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codequiz-2025.net/internal/adapter/crypto"
	"gitlab.com/codequiz-2025.net/internal/adapter/postgres/assignmentrepository"
	"gitlab.com/codequiz-2025.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/codequiz-2025.net/internal/adapter/postgres/userrepository"
	ratelimitport "gitlab.com/codequiz-2025.net/internal/adapter/redis/ratelimit"
	sandboxclient "gitlab.com/codequiz-2025.net/internal/adapter/sandbox"
	"gitlab.com/codequiz-2025.net/internal/config"
	auth2 "gitlab.com/codequiz-2025.net/internal/core/services/auth"
	"gitlab.com/codequiz-2025.net/internal/core/services/execution"
	"gitlab.com/codequiz-2025.net/internal/core/services/grading"
	"gitlab.com/codequiz-2025.net/internal/core/services/validation"
	logger2 "gitlab.com/codequiz-2025.net/internal/global/logger"
	http2 "gitlab.com/codequiz-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting grading service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg)
	if err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})

	// SECONDARY PORTS
	assignmentRepo := assignmentrepository.NewAssignmentRepository(db, logger)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)
	userPort := userrepository.New(db, logger, "public")
	rateLimiter := ratelimitport.NewCounter(redisClient, sysCfg.RateLimitCfg, logger)
	sandboxRunner := sandboxclient.NewClient(sysCfg.SandboxConfig, logger)

	// PRIMARY PORTS
	tokenProvider := crypto.NewTokenService(sysCfg.JwtConfig)

	// services
	validationSvc := validation.NewValidationService(logger)
	executionSvc := execution.NewExecutionService(sandboxRunner, logger)
	gradingSvc := grading.NewGradingService(assignmentRepo, submissionRepo, logger)
	localAuth := auth2.NewLocalAuthService(userPort, tokenProvider)

	serviceProvider := http2.NewServiceProvider(
		validationSvc,
		executionSvc,
		gradingSvc,
		localAuth,
		tokenProvider,
		rateLimiter,
		assignmentRepo,
		submissionRepo,
	)

	// server
	httpServer := http2.NewServer(sysCfg.ServerPort, "gradingCore", *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.AppConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.PostgresConfig.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
