package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"vetgate/internal/audit"
	"vetgate/internal/inquiry/client"
	inquiryhandler "vetgate/internal/inquiry/handler"
	"vetgate/internal/inquiry/service"
	"vetgate/internal/inquiry/store"
	"vetgate/internal/platform/config"
	"vetgate/internal/platform/database"
	"vetgate/internal/platform/health"
	"vetgate/internal/platform/httpserver"
	"vetgate/internal/platform/kafka"
	"vetgate/internal/platform/kafka/producer"
	"vetgate/internal/platform/logger"
	"vetgate/internal/platform/metrics"
	platformredis "vetgate/internal/platform/redis"
	httptransport "vetgate/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing vetgate",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"demo_mode", cfg.DemoMode,
	)

	m := metrics.New()
	healthHandler := health.New(cfg.Environment)

	// Provider: demo mode serves deterministic fixtures without network calls.
	var provider client.Provider
	if cfg.DemoMode {
		provider = client.NewMockProvider(200 * time.Millisecond)
	} else {
		provider = client.NewHTTPProvider(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Timeout)
	}
	cl := client.New(provider, log)

	// Snapshot store: postgres when configured, in-memory otherwise.
	var inquiryStore service.Store = store.NewInMemory()
	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close() //nolint:errcheck // best-effort close on shutdown
		inquiryStore = store.NewPostgres(pool.DB())
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
		log.Info("using postgres inquiry store")
	}

	serviceOpts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithShareBaseURL(cfg.ReportBaseURL),
	}

	// Cache: optional, read-through over provider retrievals.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck // best-effort close on shutdown
		serviceOpts = append(serviceOpts, service.WithCache(
			store.NewRedisCache(redisClient.Client, cfg.InquiryCacheTTL)))
		healthHandler.RegisterCheck("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(ctx)
		})

		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				redisClient.RecordPoolStats()
			}
		}()
		log.Info("inquiry cache enabled", "ttl", cfg.InquiryCacheTTL)
	}

	// Audit: kafka-backed when brokers are configured, in-memory otherwise.
	var auditSink audit.Sink = audit.NewInMemorySink()
	if cfg.Kafka.Brokers != "" {
		producerCfg := kafka.DefaultProducerConfig()
		producerCfg.Brokers = cfg.Kafka.Brokers
		prod, err := producer.New(producer.Config{
			Brokers:         producerCfg.Brokers,
			Acks:            producerCfg.Acks,
			Retries:         producerCfg.Retries,
			DeliveryTimeout: producerCfg.DeliveryTimeout,
		}, log)
		if err != nil {
			log.Error("failed to create kafka producer", "error", err)
			os.Exit(1)
		}
		defer prod.Close() //nolint:errcheck // flushes pending events

		topic := cfg.Kafka.AuditTopic
		if topic == "" {
			topic = audit.DefaultTopic
		}
		auditSink = audit.NewKafkaSink(prod, topic)
		healthHandler.RegisterCheck("kafka", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return kafka.NewHealthChecker(cfg.Kafka.Brokers).Check(ctx)
		})
		log.Info("audit events published to kafka", "topic", topic)
	}
	auditPublisher := audit.NewPublisher(auditSink,
		audit.WithAsyncBuffer(256),
		audit.WithPublisherLogger(log),
	)
	defer auditPublisher.Close()
	serviceOpts = append(serviceOpts, service.WithAuditPublisher(auditPublisher))

	svc := service.NewService(cl, inquiryStore, serviceOpts...)
	handler := inquiryhandler.New(svc, log, m)
	router := httptransport.NewRouter(handler, healthHandler, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	if err := httpserver.Shutdown(srv, 10*time.Second); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
