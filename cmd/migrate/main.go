package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database/migration"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding V<N>__name.sql files")
	seed := flag.Bool("seed", false, "run seeders after migrating")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	runner := migration.Runner{Dir: *dir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}
	logger.Printf("migrations applied | dir=%s", *dir)

	if *seed {
		sr := seeder.Runner{Seeders: seeder.Defaults()}
		if err := sr.Run(ctx, db); err != nil {
			logger.Fatalf("seeding failed: %v", err)
		}
		logger.Printf("seeders applied | count=%d", len(seeder.Defaults()))
	}
}
