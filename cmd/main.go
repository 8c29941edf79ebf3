package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sulochan19/image-conversion-api/internal/handlers"
	"github.com/sulochan19/image-conversion-api/internal/jwt"
	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/middlewares"
	"github.com/sulochan19/image-conversion-api/internal/repositories"
	"github.com/sulochan19/image-conversion-api/internal/services"
	"github.com/sulochan19/image-conversion-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sulochan19/image-conversion-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title image-conversion-api
// @version 1.0.0
// @description Web backend for user accounts and JPEG-to-PNG image conversion
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheExpSecond,
		kafkaBroker, kafkaTopic,
		staticDir, logLevel,
		jwtSecret, jwtAlgorithm, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheExpSecond,
		kafkaBroker, kafkaTopic,
		staticDir, logLevel,
		jwtSecret, jwtAlgorithm, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, media, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	cacheExpSecond int,
	kafkaBroker, kafkaTopic string,
	staticDir, logLevel string,
	jwtSecretKey, jwtAlgorithm string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	staticDir = getEnv("STATIC_DIR", "static")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config; the listing cache is disabled when no host is configured
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheExpSecond, err = strconv.Atoi(getEnv("CACHE_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; conversion events are skipped when no broker is configured
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "conversions")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtAlgorithm = getEnv("JWT_ALGORITHM", "HS256")
	if jwtAlgorithm != "HS256" {
		err = fmt.Errorf("unsupported JWT algorithm %q, only HS256 is supported", jwtAlgorithm)
		return
	}
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "1800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheExpSecond int,
	kafkaBroker, kafkaTopic string,
	staticDir, logLevel string,
	jwtSecretKey, jwtAlgorithm string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Create tables on startup; there is no separate migration step
	const schema = `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS conversions (
			id BIGSERIAL PRIMARY KEY,
			source_file VARCHAR(512) NOT NULL,
			png_url VARCHAR(512) NOT NULL,
			status VARCHAR(32) NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatal("Schema setup failed:", err)
	}

	// Redis-backed listing cache, optional. The services tolerate a nil cache,
	// every listing then goes to PostgreSQL.
	var cacheInvalidator services.CacheInvalidator
	var conversionCache services.ConversionCache
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()

		cacheRepo := repositories.NewConversionCacheRepository(rdb, time.Duration(cacheExpSecond)*time.Second)
		cacheInvalidator = cacheRepo
		conversionCache = cacheRepo
		log.Infof("Redis listing cache configured at %s:%d", redisHost, redisPort)
	} else {
		log.Info("No Redis host configured, conversion listing cache disabled")
	}

	// Kafka writer for conversion events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Kafka writer configured for topic %s at %s", kafkaTopic, kafkaBroker)
	} else {
		log.Info("No Kafka broker configured, conversion events will not be published")
	}

	// Media file store
	mediaStore, err := storage.NewMediaStore(filepath.Join(staticDir, "media"))
	if err != nil {
		log.Fatal("Media store init failed:", err)
	}

	// Initialize JWT service; jwtAlgorithm is validated to HS256 in parseConfig
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	conversionReadRepo := repositories.NewConversionReadRepository(db)
	conversionWriteRepo := repositories.NewConversionWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	converterService := services.NewConverterService(mediaStore, conversionWriteRepo, cacheInvalidator, kafkaWriter)
	conversionsService := services.NewConversionsService(conversionReadRepo, conversionCache)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	tokenHandler := handlers.NewTokenHandler(authService)
	uploadHandler := handlers.NewUploadHandler(converterService)
	conversionsHandler := handlers.NewConversionsHandler(conversionsService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register-user/", registerHandler)
	r.Post("/token", tokenHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwt, authService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/uploadfile/", uploadHandler)
		r.Get("/list-conversion-requests", conversionsHandler)
	})

	// Static file area serving originals and converted images
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
