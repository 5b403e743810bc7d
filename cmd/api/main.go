package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"engagement-srv/config"
	configPostgre "engagement-srv/config/postgre"
	_ "engagement-srv/docs" // Import swagger docs
	"engagement-srv/internal/httpserver"
	"engagement-srv/pkg/claude"
	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/encrypter"
	pkgJWT "engagement-srv/pkg/jwt"
	pkgKafka "engagement-srv/pkg/kafka"
	"engagement-srv/pkg/log"
	pkgRedis "engagement-srv/pkg/redis"
)

// @title       Engagement Planning Service API
// @description SNS engagement planning service: favorability scoring, impression/expression strategy, post classification, and trend detection.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name engagement_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 5. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize Redis
	redisClient, err := pkgRedis.NewRedis(pkgRedis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 8. Initialize Kafka producer for score events
	kafkaProducer, err := pkgKafka.NewProducer(pkgKafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return
	}
	defer kafkaProducer.Close()
	logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)

	// 9. Initialize Claude client (optional; trend detection degrades to
	// static data without it)
	var claudeClient claude.IClaude
	if cfg.Claude.APIKey != "" {
		claudeClient, err = claude.NewClaude(claude.ClaudeConfig{
			APIKey:    cfg.Claude.APIKey,
			Model:     cfg.Claude.Model,
			MaxTokens: cfg.Claude.MaxTokens,
		})
		if err != nil {
			logger.Warnf(ctx, "Claude client not configured (optional): %v", err)
			claudeClient = nil
		} else {
			logger.Infof(ctx, "Claude client initialized with model %s", cfg.Claude.Model)
		}
	} else {
		logger.Infof(ctx, "Claude API key not set, trend detection serves static data")
	}

	// 10. Initialize JWT Manager
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Messaging Configuration
		KafkaProducer: kafkaProducer,

		// LLM Configuration
		ClaudeClient: claudeClient,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}

// initializeJWTManager initializes JWT manager with HS256 symmetric key
func initializeJWTManager(cfg *config.Config) (*pkgJWT.Manager, error) {
	return pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
}
