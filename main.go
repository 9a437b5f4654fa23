package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"pharmadesk/internal/auth"
	"pharmadesk/internal/cli"
	"pharmadesk/internal/config"
	"pharmadesk/internal/database"
	"pharmadesk/internal/ledger"
	"pharmadesk/internal/migrations"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	menu := cli.New(auth.NewRegistry(db), ledger.New(db), os.Stdin, os.Stdout, log)
	if err := menu.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("menu loop failed")
	}
}
