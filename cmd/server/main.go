package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/witnessos/engine-core/internal/api"
	"github.com/witnessos/engine-core/internal/astro"
	"github.com/witnessos/engine-core/internal/config"
	"github.com/witnessos/engine-core/internal/engines"
	"github.com/witnessos/engine-core/internal/orchestrator"
	"github.com/witnessos/engine-core/internal/storage"
	"github.com/witnessos/engine-core/internal/storage/sqlstore"
	"github.com/witnessos/engine-core/internal/workflow"
	"github.com/witnessos/engine-core/pkg/cache"
	"github.com/witnessos/engine-core/pkg/logger"

	"gopkg.in/yaml.v3"
)

// @title WitnessOS Engine Core API
// @version 1.0.0
// @description Multi-engine consciousness-analysis service: thirteen divination engines behind a uniform contract, with orchestration, synthesis, and workflow layers on top.
// @termsOfService http://swagger.io/terms/

// @contact.name WitnessOS Core Team
// @contact.url https://github.com/witnessos/engine-core

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey AdminAPIKeyAuth
// @in header
// @name X-Admin-Api-Key
// @description Admin API key for privileged endpoints.

// These are set via -ldflags at build time.
var (
	version    = "dev"
	commitHash = "unknown"
	buildTime  = ""
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		runHealthcheck()
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "config" && len(os.Args) > 2 && os.Args[2] == "dump" {
		dumpConfig()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("starting engine-core", "version", version, "commit", commitHash, "built", buildTime, "environment", cfg.Environment)

	cacheBackend := buildCacheBackend(cfg, log)
	ttl := time.Duration(cfg.Cache.DefaultTTL) * time.Second
	resultCache := storage.NewResultCache(cacheBackend, log, ttl)

	sqlClient := buildSQLStore(cfg, log)
	if sqlClient != nil {
		defer sqlClient.Close()
	}

	eph := buildEphemeris(cfg, log)
	registry := engines.RegisterAll(eph)
	log.Info("engine registry initialised", "engines", registry.Names())

	orch := orchestrator.New(registry, resultCache, sqlClient, log, cfg.Orchestrator, cfg.Retention)
	workflows := workflow.New(orch)

	server := api.NewServer(cfg, log, registry, orch, workflows, eph, cacheBackend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Info("shutdown signal received")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		log.Fatal("server failed to start", "error", err)
	}

	log.Info("engine-core shutdown complete")
}

func buildCacheBackend(cfg *config.Config, log logger.Logger) cache.Cache {
	ttl := time.Duration(cfg.Cache.DefaultTTL) * time.Second
	backend, err := cache.NewRedisCache(cfg.Cache.Addr, cfg.Cache.DB, cfg.Cache.Password, ttl, log)
	if err != nil {
		log.Warn("cache backend unavailable; continuing in degraded mode", "error", err)
		return cache.NewNoopCache(log, ttl)
	}
	log.Info("cache backend connected", "addr", cfg.Cache.Addr)
	return backend
}

func buildSQLStore(cfg *config.Config, log logger.Logger) *sqlstore.Client {
	if cfg.Database.Driver != "mysql" {
		log.Warn("reading persistence disabled (database.driver != mysql)")
		return nil
	}
	client, err := sqlstore.Connect(cfg.Database)
	if err != nil {
		log.Warn("reading persistence store unavailable; continuing without it", "error", err)
		return nil
	}
	log.Info("reading persistence store connected", "host", cfg.Database.Host, "database", cfg.Database.Database)
	return client
}

func buildEphemeris(cfg *config.Config, log logger.Logger) astro.Ephemeris {
	if cfg.Ephemeris.DataPath == "" {
		log.Warn("no ephemeris data path configured; using stub ephemeris (not astronomically accurate)")
		return astro.NewStubEphemeris()
	}
	log.Info("ephemeris data path configured", "path", cfg.Ephemeris.DataPath)
	return astro.NewSwissEphemeris(cfg.Ephemeris.DataPath)
}

// dumpConfig prints the effective startup configuration as YAML, with
// secrets redacted, for operators diagnosing a misconfigured deployment.
func dumpConfig() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration load failed: %v", err)
	}
	cfg.Database.Password = "[redacted]"
	cfg.Cache.Password = "[redacted]"
	cfg.Admin.APIKeyHash = "[redacted]"

	out, err := yaml.Marshal(cfg)
	if err != nil {
		log.Fatalf("failed to render configuration: %v", err)
	}
	log.Print(string(out))
}

func runHealthcheck() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration load failed: %v", err)
	}

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/health", cfg.Port))
	if err != nil {
		log.Fatalf("health check failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("health check failed: status %d", resp.StatusCode)
	}
	log.Println("healthy")
}
