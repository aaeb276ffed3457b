package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"testpark/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	username := "admin"

	var existing int
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&existing)
	if err == nil {
		log.Println("  - admin user already exists, skipping")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	password := os.Getenv("ADMIN_INITIAL_PASSWORD")
	if password == "" {
		password = "testpark123!"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (username, name, password_hash, role)
		VALUES ($1, $2, $3, 'admin')`,
		username, "관리자", hashed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}
	log.Println("  - admin user created")
	return nil
}
