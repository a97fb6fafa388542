package main

import (
	"context"
	"flag"
	"os"

	"hotel/internal/config"
	"hotel/internal/database"
	"hotel/internal/logging"
	"hotel/internal/seed"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	fixture := flag.String("fixture", "seed/hotel.yaml", "path to the YAML fixture")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(cfg).With().Str("component", "seed").Logger()

	if cfg.IsProduction() {
		logger.Fatal().Msg("refusing to wipe and seed a production database")
	}

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	f, err := seed.LoadFile(*fixture)
	if err != nil {
		logger.Fatal().Err(err).Str("fixture", *fixture).Msg("load fixture")
	}
	if err := seed.Apply(context.Background(), db, f, bcrypt.DefaultCost, logger); err != nil {
		logger.Fatal().Err(err).Msg("seed failed")
	}
	logger.Info().Str("fixture", *fixture).Msg("database seeded")
}
