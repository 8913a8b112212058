package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightfinder/internal/airport"
	"github.com/dharmasatrya/flightfinder/internal/auth"
	"github.com/dharmasatrya/flightfinder/internal/cache"
	"github.com/dharmasatrya/flightfinder/internal/config"
	"github.com/dharmasatrya/flightfinder/internal/handler"
	"github.com/dharmasatrya/flightfinder/internal/logging"
	"github.com/dharmasatrya/flightfinder/internal/providers"
	"github.com/dharmasatrya/flightfinder/internal/proxy"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	if !cfg.HasCredentials() {
		log.Warn("AMADEUS_API_KEY or AMADEUS_API_SECRET is not set; searches will fail authentication")
	}

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	tokens := auth.NewTokenCache(auth.Config{
		ClientID:     cfg.AmadeusAPIKey,
		ClientSecret: cfg.AmadeusAPISecret,
		TokenURL:     cfg.AmadeusAuthURL,
	}, auth.WithHTTPClient(httpClient))

	provider := providers.NewAmadeusProvider(cfg.AmadeusFlightURL, httpClient)

	var offerCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			TTL:      cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		offerCache = redisCache
		log.Infof("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		offerCache = cache.NewNoOpCache()
		log.Info("Cache disabled")
	}
	defer offerCache.Close()

	directory := airport.NewDirectory(airport.NewSource(cfg.AirportsSource, httpClient))

	e := handler.NewRouter(
		handler.NewSearchHandler(proxy.NewService(tokens, provider, offerCache)),
		handler.NewAirportHandler(directory),
	)

	go func() {
		log.Infof("Starting flight search server on port %s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
	log.Info("Server stopped")
}
