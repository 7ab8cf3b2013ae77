package main

import (
	"fmt"
	"os"
	"time"

	cfgPkg "github.com/hirewire/jobboard/app/config"
	"github.com/hirewire/jobboard/app/logger"
	"github.com/hirewire/jobboard/app/services"
	"github.com/hirewire/jobboard/app/store"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load .env file (if it exists)
	cfgPkg.Load()

	if err := validateRequiredEnv(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("required environment variables missing")
	}

	// Build connection string from individual components
	dbUser := cfgPkg.GetString("POSTGRES_USER", "postgres")
	dbPassword := cfgPkg.GetString("POSTGRES_PASSWORD", "postgres")
	dbHost := cfgPkg.GetString("POSTGRES_HOST", "localhost")
	dbPort := cfgPkg.GetString("POSTGRES_PORT", "5432")
	dbName := cfgPkg.GetString("POSTGRES_DB", "jobboard")
	dbSSLMode := cfgPkg.GetString("POSTGRES_SSLMODE", "disable")

	dbAddr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPassword, dbHost, dbPort, dbName, dbSSLMode)

	cfg := config{
		addr:         cfgPkg.GetString("ADDR", ":8080"),
		authRequired: cfgPkg.GetBool("AUTH_REQUIRED", true),
		db: dbConfig{
			addr:         dbAddr,
			maxOpenConns: cfgPkg.GetInt("DB_MAX_OPEN_CONNS", 30),
			maxIdleConns: cfgPkg.GetInt("DB_MAX_IDLE_CONNS", 30),
			maxIdleTime:  cfgPkg.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
	}

	logger.Logger.Info().
		Str("host", dbHost).
		Str("port", dbPort).
		Str("database", dbName).
		Str("sslmode", dbSSLMode).
		Msg("connecting to postgres")

	db, err := cfgPkg.NewDB(
		cfg.db.addr,
		cfg.db.maxOpenConns,
		cfg.db.maxIdleConns,
		cfg.db.maxIdleTime,
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	logger.Logger.Info().
		Str("host", dbHost).
		Str("database", dbName).
		Msg("postgres connection pool established")

	storage := store.NewStorage(db)

	tokens := services.NewTokenManager(
		[]byte(os.Getenv("JWT_SECRET")),
		cfgPkg.GetDuration("JWT_TTL", 72*time.Hour),
	)
	authService := services.NewAuthService(storage, services.NewBcryptHasher(), tokens)

	app := &application{
		config:      cfg,
		store:       storage,
		authService: authService,
		db:          db,
	}
	mux := app.mount()

	if err := app.runWithGracefulShutdown(mux, db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("server error")
	}
}

func validateRequiredEnv() error {
	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}
