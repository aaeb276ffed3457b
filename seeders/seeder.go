package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll fills the dictionaries an empty installation needs to be usable:
// the admin operator, the template overrides and a demo partner set.
func SeedAll(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding dictionaries...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	if err := seedMessageTemplates(ctx, db); err != nil {
		log.Fatalf("failed to seed message templates: %v", err)
	}
	if err := seedCompanies(ctx, db); err != nil {
		log.Fatalf("failed to seed companies: %v", err)
	}

	log.Println("seeding done")
}
