package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/adapters"
	router "github.com/KianoushAmirpour/detection_server/internal/adapters/http"
	"github.com/KianoushAmirpour/detection_server/internal/adapters/http/handler"
	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"github.com/KianoushAmirpour/detection_server/internal/infrastructure/ai"
	config "github.com/KianoushAmirpour/detection_server/internal/infrastructure/configs"
	"github.com/KianoushAmirpour/detection_server/internal/infrastructure/countries"
	"github.com/KianoushAmirpour/detection_server/internal/infrastructure/repository/redis"
	"github.com/KianoushAmirpour/detection_server/internal/usecase"
	"github.com/KianoushAmirpour/detection_server/pkg/logger"
	"github.com/gin-gonic/gin"
)

type App struct {
	Cfg *config.Config
}

func (a App) Run() {

	rootctx, rootcancel := context.WithCancel(context.Background())
	defer rootcancel()

	logger := logger.NewLogger(a.Cfg.LogFile)

	var limiter domain.RateLimiter = adapters.NewIpLimiter(a.Cfg.RataLimitCapacity, a.Cfg.RataLimitFillRate)
	var countryCache domain.CountryCache

	if a.Cfg.RedisAddr != "" {
		redisConn, err := redis.ConnectToRedis(a.Cfg.RedisAddr, a.Cfg.RedisDB)
		if err != nil {
			logger.Error("redis connection failed", "reason", err.Error())
			panic(err)
		}
		defer redisConn.Close()

		limiter = redis.NewRedisRateLimiter(redisConn, a.Cfg.RataLimitCapacity, a.Cfg.RataLimitFillRate, a.Cfg.RateLimitTTL)
		if a.Cfg.CountryCacheTTL > 0 {
			countryCache = redis.NewCountryCache(redisConn, a.Cfg.CountryCacheTTL)
		}
		logger.Info("using redis for rate limiting and caching", "redis.addr", a.Cfg.RedisAddr)
	}

	httpClient := &http.Client{Timeout: a.Cfg.HTTPClientTimeout}

	gemeniClient, err := ai.NewGemeniClient(rootctx, a.Cfg.GeminiAPI, a.Cfg.GeminiModel, a.Cfg.GeminiBaseURL, httpClient)
	if err != nil {
		logger.Error("failed to create gemeni client", "reason", err.Error())
		panic(err)
	}

	profiles, err := countries.LoadProfiles()
	if err != nil {
		logger.Error("failed to load country profiles", "reason", err.Error())
		panic(err)
	}
	countryClient := countries.NewClient(a.Cfg.CountryAPIURL, a.Cfg.HTTPClientTimeout)

	retry := usecase.NewRetryPolicy(a.Cfg.AIMaxAttempts, a.Cfg.AIRetryBaseDelay, logger.With("service.name", "ai_retry"))
	analysisSvc := usecase.NewAnalysisService(gemeniClient, ai.Prompts{}, retry, logger)
	countrySvc := usecase.NewCountryService(countryClient, countryCache, profiles, logger)

	h := handler.NewDetectionHandler(analysisSvc, countrySvc, limiter, logger, a.Cfg.MaxAllowedSize, a.Cfg.MaxImageSize)

	gin.SetMode(gin.ReleaseMode)
	g, err := router.SetupRoutes(router.RouterConfig{DetectionHandler: h})
	if err != nil {
		logger.Error("failed to setup routes", "reason", err.Error())
		panic(err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Cfg.ServerPort),
		Handler:           g,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting the server", "server.port", a.Cfg.ServerPort)
		serverErr := server.ListenAndServe()
		if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
			logger.Error("failed to start the server", "reason", serverErr.Error())
			rootcancel()
		}
	}()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigchan:
	case <-rootctx.Done():
	}

	shutdownctx, shutdowncancelFunc := context.WithTimeout(context.Background(), time.Duration(a.Cfg.ServerShutdownTimeout)*time.Second)
	defer shutdowncancelFunc()
	if err := server.Shutdown(shutdownctx); err != nil {
		logger.Error("server closed with error", "reason", err.Error())
	}
	logger.Info("server stopped")

}
