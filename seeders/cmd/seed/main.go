package main

import (
	"log"

	"testpark/pkg/config"
	"testpark/pkg/database/postgresql"
	"testpark/seeders"
)

func main() {
	cfg := config.New()

	if err := postgresql.Migrate(cfg.Postgres.DSN, "migrations"); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedAll(db)
}
