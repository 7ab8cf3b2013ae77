package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	cfgPkg "github.com/hirewire/jobboard/app/config"
	"github.com/hirewire/jobboard/app/logger"
	"github.com/hirewire/jobboard/migrations"
)

func main() {
	logger.Init()
	cfgPkg.Load()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	dbUser := cfgPkg.GetString("POSTGRES_USER", "postgres")
	dbPassword := cfgPkg.GetString("POSTGRES_PASSWORD", "postgres")
	dbHost := cfgPkg.GetString("POSTGRES_HOST", "localhost")
	dbPort := cfgPkg.GetString("POSTGRES_PORT", "5432")
	dbName := cfgPkg.GetString("POSTGRES_DB", "jobboard")
	dbSSLMode := cfgPkg.GetString("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPassword, dbHost, dbPort, dbName, dbSSLMode)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to set goose dialect")
	}

	ctx := context.Background()
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, ".")
	case "down":
		err = goose.DownContext(ctx, db, ".")
	case "status":
		err = goose.StatusContext(ctx, db, ".")
	default:
		logger.Logger.Fatal().Str("command", command).Msg("unknown command, expected up, down, or status")
	}
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("command", command).Msg("migration failed")
	}

	logger.Logger.Info().Str("command", command).Msg("migrations complete")
}
