package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"school-case-management/config"
	_ "school-case-management/docs" // Swagger docs
	caseHTTP "school-case-management/internal/casefile/delivery/http"
	"school-case-management/internal/casefile/repository"
	backendRepo "school-case-management/internal/casefile/repository/backend"
	cacheRepo "school-case-management/internal/casefile/repository/cache"
	caseUC "school-case-management/internal/casefile/usecase"
	deadlineHTTP "school-case-management/internal/deadline/delivery/http"
	deadlineUC "school-case-management/internal/deadline/usecase"
	"school-case-management/internal/httpserver"
	"school-case-management/internal/middleware"
	"school-case-management/pkg/datemath"
	"school-case-management/pkg/log"
)

// @title       School Case Deadlines API
// @description Business-day aware protocol deadlines and urgency classification for school cases.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting School Case Management deadlines API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Deadline.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Deadline.Timezone, err)
		return
	}

	// 4. Deadline domain
	deadlineHandler := deadlineHTTP.New(logger, deadlineUC.New(logger, dateMathParser))

	// 5. Case domain
	backendClient := backendRepo.NewClient(
		cfg.Backend.URL, cfg.Backend.AccessToken, cfg.Backend.Timeout,
		backendRepo.WithBreaker(uint32(cfg.Backend.BreakerFailures), cfg.Backend.BreakerTimeout),
	)
	var caseRepo repository.CaseRepository = backendRepo.New(backendClient, logger)
	if cfg.Cache.Enabled {
		caseRepo = cacheRepo.New(caseRepo, cacheRepo.Config{Size: cfg.Cache.Size, TTL: cfg.Cache.TTL}, logger)
		logger.Infof(ctx, "Case cache enabled (size=%d, ttl=%s)", cfg.Cache.Size, cfg.Cache.TTL)
	}
	caseHandler := caseHTTP.New(logger, caseUC.New(logger, caseRepo, dateMathParser))

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit.RequestsPerMin),
		Dependencies:    []httpserver.Dependency{backendClient},
		DeadlineHandler: deadlineHandler,
		CaseHandler:     caseHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
