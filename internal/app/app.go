package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"valet/internal/adapters/cache"
	"valet/internal/adapters/httpclient"
	"valet/internal/api"
	"valet/internal/average"
	"valet/internal/average/handler"
	"valet/internal/config"
	httpserver "valet/internal/platform/http"
	"valet/internal/platform/metrics"
	"valet/internal/schema"
	"valet/internal/valet"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logger := logrus.StandardLogger()
	logger.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err = metrics.Register(registry); err != nil {
		logger.WithError(err).Error("Failed to register metrics")
		return err
	}

	// Valet client (configurable timeout)
	httpTimeout := appCfg.HTTPClient.Timeout()
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	apiClient := httpclient.NewAPIClient(&http.Client{Timeout: httpTimeout}, logger)
	valetClient := valet.NewClient(apiClient, appCfg.Valet.BaseURL)

	// Cache
	averageCache, err := cache.NewAverageCache(appCfg.Cache.MaxItems, appCfg.Cache.TTL())
	if err != nil {
		logger.WithError(err).Error("Failed to create average cache")
		return err
	}
	defer averageCache.Close()

	// Services
	calculator := average.NewCalculator(valetClient, logger)
	averageService := average.NewService(calculator, averageCache, appCfg.Average.DefaultWeeks, logger)
	validator, err := schema.NewObservations(logger)
	if err != nil {
		logger.WithError(err).Error("Failed to compile observations schema")
		return err
	}

	warmKeys, err := average.ParsePairs(appCfg.Average.Pairs, averageService.DefaultWeeks())
	if err != nil {
		logger.WithError(err).Error("Invalid average pairs in config")
		return err
	}
	scheduler := average.NewScheduler(calculator, averageCache, warmKeys, time.Duration(appCfg.Scheduler.JobDurationSec)*time.Second, logger)
	// Ensure scheduler stops before the cache closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logger.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logger.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logger.Info("✅ Scheduler activation successful")

	// Handlers and router
	averageHandler := handler.NewAverageHandler(averageService, validator, logger)
	router := api.NewRouter(averageHandler, registry)

	logger.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logger.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
