package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/classifier"
	"github.com/shenikar/urgences_dashboard/internal/config"
	v1 "github.com/shenikar/urgences_dashboard/internal/handler/http/v1"
	"github.com/shenikar/urgences_dashboard/internal/repository"
	"github.com/shenikar/urgences_dashboard/internal/service"
	"github.com/shenikar/urgences_dashboard/internal/storage"
	"github.com/shenikar/urgences_dashboard/internal/webhook"
	"github.com/shenikar/urgences_dashboard/pkg/logger"
	"github.com/shenikar/urgences_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/urgences_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/urgences_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Urgences Dashboard API
// @version 1.0
// @description Citizen incident reporting, public alerts, safety guides and the regional admin directory.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the actor token.
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// backend - выбранное хранилище коллекций и открытые для него соединения
type backend struct {
	kv          storage.KV
	redisClient *redis.Client
	dbpool      *pgxpool.Pool
}

func (b *backend) Close() {
	if b.redisClient != nil {
		b.redisClient.Close()
	}
	if b.dbpool != nil {
		b.dbpool.Close()
	}
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	return redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
}

func openBackend(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*backend, error) {
	b := &backend{}

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		if err := runMigrations(cfg, log); err != nil {
			return nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		b.dbpool = dbpool
		b.kv = storage.NewPostgresKV(dbpool)
	case config.BackendMemory:
		log.Warn("Using in-memory store, data is lost on restart")
		b.kv = storage.NewMemoryKV()
	default:
		client, err := connectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to Redis")
		b.redisClient = client
		b.kv = storage.NewRedisKV(client, cfg.StoreMaxRetries)
	}

	// Очередь вебхуков живет в Redis независимо от хранилища коллекций
	if b.redisClient == nil && cfg.WebhookURL != "" {
		client, err := connectRedis(ctx, cfg)
		if err != nil {
			b.Close()
			return nil, err
		}
		log.Info("Successfully connected to Redis for webhook delivery")
		b.redisClient = client
	}

	return b, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer store.Close()

	if cfg.SeedOnStart {
		if err := storage.Seed(ctx, store.kv, cfg.StoreKeyPrefix, log); err != nil {
			log.Fatalf("Failed to seed collections: %v", err)
		}
	}

	// Издатель и воркер вебхуков
	var publisher webhook.EventPublisher = webhook.NopPublisher{}
	if store.redisClient != nil {
		publisher = webhook.NewRedisEventPublisher(store.redisClient)
		webhook.NewWebhookWorker(store.redisClient, log, cfg).Start(ctx)
	}

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(store.kv, cfg.StoreKeyPrefix, log)
	alertRepo := repository.NewAlertRepository(store.kv, cfg.StoreKeyPrefix, log)
	guideRepo := repository.NewGuideRepository(store.kv, cfg.StoreKeyPrefix, log)
	adminRepo := repository.NewRegionalAdminRepository(store.kv, cfg.StoreKeyPrefix, log)

	policy, err := access.NewPolicy()
	if err != nil {
		log.Fatalf("Failed to build access policy: %v", err)
	}
	tokens := access.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Инициализация сервисов
	services := v1.Services{
		Incidents:  service.NewIncidentService(incidentRepo, adminRepo, policy, publisher, log, cfg),
		Alerts:     service.NewAlertService(alertRepo, policy, log),
		Guides:     service.NewGuideService(guideRepo, policy, log),
		Admins:     service.NewRegionalAdminService(adminRepo, policy, log),
		Stats:      service.NewStatsService(incidentRepo, alertRepo, adminRepo, policy, log),
		Classifier: service.NewClassifierService(classifier.New(cfg.ClassifierDelay), policy, log),
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, tokens, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("backend", cfg.StoreBackend).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
